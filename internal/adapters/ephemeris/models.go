package ephemeris

import "natalchart/internal/core/bodyname"

// BirthData is the request payload for a chart computation
// Either City+Nation or Lat+Lng+Timezone must be set, the provider geocodes
// the former and takes the latter verbatim
type BirthData struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`

	City     string   `json:"city,omitempty"`
	Nation   string   `json:"nation,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	Timezone string   `json:"tz_str,omitempty"`

	Name string `json:"name,omitempty"`
}

// Chart is the provider's computed natal chart document
type Chart struct {
	Name          string         `json:"name"`
	BirthDatetime string         `json:"birth_datetime"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	SunSign       string         `json:"sun_sign"`
	MoonSign      string         `json:"moon_sign"`
	RisingSign    string         `json:"rising_sign"`
	LunarPhase    LunarPhase     `json:"lunar_phase"`
	Planets       []BodyPosition `json:"planets"`
	Houses        []HouseCusp    `json:"houses"`
}

// BodyPosition is one positioned body as the provider reports it
type BodyPosition struct {
	Name       string   `json:"name"`
	Sign       string   `json:"sign"`
	SignNum    int      `json:"sign_num"`
	Degree     float64  `json:"degree"`
	AbsDegree  float64  `json:"abs_degree"`
	House      int      `json:"house"`
	Retrograde bool     `json:"retrograde"`
	Speed      *float64 `json:"speed"`
}

// DisplayName folds provider spellings like true_north_lunar_node or
// MEAN NODE into a stable title cased form
func (p BodyPosition) DisplayName() string {
	return bodyname.Display(p.Name)
}

// HouseCusp is one of the twelve house boundaries
type HouseCusp struct {
	Number    int     `json:"number"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	AbsDegree float64 `json:"abs_degree"`
}

// LunarPhase describes the moon phase at birth time
type LunarPhase struct {
	DegreesBetween float64 `json:"degrees_between"`
	PhaseName      string  `json:"phase_name"`
	Emoji          string  `json:"emoji"`
}
