// Package domain holds DTOs for stats http and service contracts
package domain

import "time"

// ReadingEvent is one computed chart outcome recorded for frequency stats
type ReadingEvent struct {
	ReadingID        string    `json:"reading_id" example:"0b7e2c3a-4d5f-4e6a-8b9c-0d1e2f3a4b5c"`
	Shape            string    `json:"shape" example:"bowl"`
	DistributionKeys []string  `json:"distribution_keys" example:"hemisphere_southern,quadrant_1"`
	RecordedAt       time.Time `json:"recorded_at"`
}

// ShapeCount is one row of the shape frequency breakdown
type ShapeCount struct {
	Shape string `json:"shape" example:"bowl"`
	Count uint64 `json:"count" example:"42"`
}
