package domain

import "context"

// RecorderPort is consumed by the chart module to log computed readings
// recording is best effort on the caller side, implementations still return
// errors so callers can decide what to do with them
type RecorderPort interface {
	Record(ctx context.Context, ev ReadingEvent) error
}

// ServicePort is consumed by handlers
type ServicePort interface {
	RecorderPort
	ShapeCounts(ctx context.Context) ([]ShapeCount, error)
}
