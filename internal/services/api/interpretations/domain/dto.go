// Package domain holds DTOs for interpretations http and service contracts
package domain

// ShapeInterpretation is the reading text for one chart shape
type ShapeInterpretation struct {
	Key  string `json:"key" example:"bowl"`
	Text string `json:"text" example:"All planets within one half of the chart ..."`
}

// DistributionInterpretation is the reading text for one hemisphere or quadrant emphasis
type DistributionInterpretation struct {
	Key  string `json:"key" example:"hemisphere_northern"`
	Text string `json:"text" example:"Most planets below the horizon ..."`
}

// PlanetSign identifies a planet placed in a zodiac sign
type PlanetSign struct {
	Planet string `json:"planet" example:"Sun"`
	Sign   string `json:"sign" example:"Gemini"`
}

// PlanetHouse identifies a planet placed in a numbered house
type PlanetHouse struct {
	Planet string `json:"planet" example:"Moon"`
	House  int    `json:"house" example:"4"`
}
