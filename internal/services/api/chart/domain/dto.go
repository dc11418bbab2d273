// Package domain holds DTOs for chart http and service contracts
package domain

// ChartRequest is the birth data for a full reading
// provide either City plus Nation for geocoding by the provider, or
// Lat plus Lng plus Timezone for direct coordinates
type ChartRequest struct {
	Year   int `json:"year" validate:"required,min=1,max=3000" example:"1990"`
	Month  int `json:"month" validate:"required,min=1,max=12" example:"6"`
	Day    int `json:"day" validate:"required,min=1,max=31" example:"15"`
	Hour   int `json:"hour" validate:"min=0,max=23" example:"12"`
	Minute int `json:"minute" validate:"min=0,max=59" example:"0"`

	City     string   `json:"city,omitempty" validate:"omitempty,min=1,max=200" example:"New York"`
	Nation   string   `json:"nation,omitempty" validate:"omitempty,len=2,alpha" example:"US"`
	Lat      *float64 `json:"lat,omitempty" validate:"omitempty,finite,gte=-90,lte=90" example:"40.7128"`
	Lng      *float64 `json:"lng,omitempty" validate:"omitempty,finite,gte=-180,lte=180" example:"-74.006"`
	Timezone string   `json:"tz_str,omitempty" validate:"omitempty,max=64" example:"America/New_York"`

	Name string `json:"name,omitempty" validate:"omitempty,max=100" example:"Test Subject"`
}

// BodyInput is one raw positioned body for the classify endpoint
type BodyInput struct {
	Name      string  `json:"name" validate:"required,max=60" example:"Sun"`
	Longitude float64 `json:"longitude" validate:"finite" example:"84.1"`
	House     int     `json:"house" validate:"min=0,max=12" example:"10"`
}

// ClassifyRequest carries raw positions straight to the classifiers
type ClassifyRequest struct {
	Bodies []BodyInput `json:"bodies" validate:"max=30,dive"`
}

// Planet is one positioned body in a reading
type Planet struct {
	Name       string   `json:"name" example:"Sun"`
	Sign       string   `json:"sign" example:"Gemini"`
	SignNum    int      `json:"sign_num" example:"2"`
	Degree     float64  `json:"degree" example:"24.1"`
	AbsDegree  float64  `json:"abs_degree" example:"84.1"`
	House      int      `json:"house" example:"10"`
	Retrograde bool     `json:"retrograde" example:"false"`
	Speed      *float64 `json:"speed,omitempty" example:"0.9581"`
}

// House is one house cusp in a reading
type House struct {
	Number    int     `json:"number" example:"1"`
	Sign      string  `json:"sign" example:"Virgo"`
	Degree    float64 `json:"degree" example:"3.2"`
	AbsDegree float64 `json:"abs_degree" example:"153.2"`
}

// LunarPhase is the moon phase at birth time
type LunarPhase struct {
	DegreesBetween float64 `json:"degrees_between" example:"273.5"`
	PhaseName      string  `json:"phase_name" example:"Last Quarter"`
	Emoji          string  `json:"emoji" example:"🌗"`
}

// ShapeReading is the shape verdict plus its texts
// Primary is null when too few bodies qualified for classification
type ShapeReading struct {
	Primary        *string           `json:"primary" example:"bowl"`
	Interpretation *string           `json:"interpretation"`
	Distribution   map[string]string `json:"distribution"`
}

// Interpretations groups the seeded reading texts for a chart
type Interpretations struct {
	PlanetInSign  map[string]string `json:"planet_in_sign"`
	PlanetInHouse map[string]string `json:"planet_in_house"`
	ChartShape    ShapeReading      `json:"chart_shape"`
}

// Reading is the full chart response
type Reading struct {
	ID            string  `json:"id" example:"0b7e2c3a-4d5f-4e6a-8b9c-0d1e2f3a4b5c"`
	Name          string  `json:"name,omitempty" example:"Test Subject"`
	BirthDatetime string  `json:"birth_datetime" example:"1990-06-15T12:00"`
	Latitude      float64 `json:"latitude" example:"40.7128"`
	Longitude     float64 `json:"longitude" example:"-74.006"`

	SunSign    string     `json:"sun_sign" example:"Gemini"`
	MoonSign   string     `json:"moon_sign" example:"Pisces"`
	RisingSign string     `json:"rising_sign" example:"Virgo"`
	LunarPhase LunarPhase `json:"lunar_phase"`

	Planets []Planet `json:"planets"`
	Houses  []House  `json:"houses"`

	Shape            *string  `json:"shape" example:"bowl"`
	DistributionKeys []string `json:"distribution_keys" example:"hemisphere_southern,quadrant_1"`

	Interpretations Interpretations `json:"interpretations"`
}

// ClassifyResponse is the verdict for raw positions
type ClassifyResponse struct {
	Shape            *string           `json:"shape" example:"bowl"`
	ShapeText        *string           `json:"shape_interpretation"`
	DistributionKeys []string          `json:"distribution_keys" example:"hemisphere_southern,quadrant_1"`
	Distribution     map[string]string `json:"distribution"`
}
