// Package service contains the chart reading workflow
package service

import (
	"context"

	"github.com/google/uuid"

	"natalchart/internal/core/bodyname"
	"natalchart/internal/core/chartshape"
	"natalchart/internal/core/distribution"
	perr "natalchart/internal/platform/errors"
	"natalchart/internal/platform/logger"
	"natalchart/internal/services/api/chart/domain"

	"natalchart/internal/adapters/ephemeris"
	interpdom "natalchart/internal/services/api/interpretations/domain"
	statsdom "natalchart/internal/services/api/stats/domain"
)

// Service defines the chart service contract
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	provider domain.ProviderPort
	reader   interpdom.ReaderPort
	recorder statsdom.RecorderPort
	log      logger.Logger
	newID    func() string
}

// New creates a new chart service
// recorder may be nil when stats are disabled, the other ports are required
func New(provider domain.ProviderPort, reader interpdom.ReaderPort, recorder statsdom.RecorderPort) *Svc {
	if provider == nil {
		panic("chart.Service requires a non nil ProviderPort")
	}
	if reader == nil {
		panic("chart.Service requires a non nil ReaderPort")
	}
	return &Svc{
		provider: provider,
		reader:   reader,
		recorder: recorder,
		log:      *logger.Named("chart"),
		newID:    uuid.NewString,
	}
}

// Compute resolves positions from the provider, classifies the chart and
// assembles the full reading
func (s *Svc) Compute(ctx context.Context, in domain.ChartRequest) (domain.Reading, error) {
	if err := checkLocation(in); err != nil {
		return domain.Reading{}, err
	}

	chart, err := s.provider.NatalChart(ctx, ephemeris.BirthData{
		Year: in.Year, Month: in.Month, Day: in.Day, Hour: in.Hour, Minute: in.Minute,
		City: in.City, Nation: in.Nation,
		Lat: in.Lat, Lng: in.Lng, Timezone: in.Timezone,
		Name: in.Name,
	})
	if err != nil {
		return domain.Reading{}, err
	}

	planets := make([]domain.Planet, 0, len(chart.Planets))
	shapeBodies := make([]chartshape.Body, 0, len(chart.Planets))
	houses := make([]int, 0, len(chart.Planets))
	signPairs := make([]interpdom.PlanetSign, 0, len(chart.Planets))
	housePairs := make([]interpdom.PlanetHouse, 0, len(chart.Planets))

	for _, p := range chart.Planets {
		name := p.DisplayName()
		planets = append(planets, domain.Planet{
			Name:       name,
			Sign:       p.Sign,
			SignNum:    p.SignNum,
			Degree:     p.Degree,
			AbsDegree:  p.AbsDegree,
			House:      p.House,
			Retrograde: p.Retrograde,
			Speed:      p.Speed,
		})
		shapeBodies = append(shapeBodies, chartshape.Body{Name: name, Longitude: p.AbsDegree})
		houses = append(houses, p.House)
		signPairs = append(signPairs, interpdom.PlanetSign{Planet: name, Sign: p.Sign})
		housePairs = append(housePairs, interpdom.PlanetHouse{Planet: name, House: p.House})
	}

	shape := chartshape.Classify(shapeBodies)
	distKeys := keyStrings(distribution.Analyze(houses))

	shapeText, distTexts, err := s.shapeTexts(ctx, shape, distKeys)
	if err != nil {
		return domain.Reading{}, err
	}
	signTexts, err := s.reader.PlanetSignTexts(ctx, signPairs)
	if err != nil {
		return domain.Reading{}, err
	}
	houseTexts, err := s.reader.PlanetHouseTexts(ctx, housePairs)
	if err != nil {
		return domain.Reading{}, err
	}

	id := s.newID()
	s.record(ctx, id, shape, distKeys)

	cusps := make([]domain.House, 0, len(chart.Houses))
	for _, h := range chart.Houses {
		cusps = append(cusps, domain.House{
			Number: h.Number, Sign: h.Sign, Degree: h.Degree, AbsDegree: h.AbsDegree,
		})
	}

	return domain.Reading{
		ID:            id,
		Name:          chart.Name,
		BirthDatetime: chart.BirthDatetime,
		Latitude:      chart.Latitude,
		Longitude:     chart.Longitude,
		SunSign:       chart.SunSign,
		MoonSign:      chart.MoonSign,
		RisingSign:    chart.RisingSign,
		LunarPhase: domain.LunarPhase{
			DegreesBetween: chart.LunarPhase.DegreesBetween,
			PhaseName:      chart.LunarPhase.PhaseName,
			Emoji:          chart.LunarPhase.Emoji,
		},
		Planets:          planets,
		Houses:           cusps,
		Shape:            shapeKey(shape),
		DistributionKeys: distKeys,
		Interpretations: domain.Interpretations{
			PlanetInSign:  signTexts,
			PlanetInHouse: houseTexts,
			ChartShape: domain.ShapeReading{
				Primary:        shapeKey(shape),
				Interpretation: shapeText,
				Distribution:   distTexts,
			},
		},
	}, nil
}

// Classify runs the pure classifiers over raw positions
// degenerate input is a valid question with a null answer, never an error
func (s *Svc) Classify(ctx context.Context, in domain.ClassifyRequest) (domain.ClassifyResponse, error) {
	bodies := make([]chartshape.Body, 0, len(in.Bodies))
	houses := make([]int, 0, len(in.Bodies))
	for _, b := range in.Bodies {
		bodies = append(bodies, chartshape.Body{
			Name:      bodyname.Display(b.Name),
			Longitude: b.Longitude,
		})
		houses = append(houses, b.House)
	}

	shape := chartshape.Classify(bodies)
	distKeys := keyStrings(distribution.Analyze(houses))

	shapeText, distTexts, err := s.shapeTexts(ctx, shape, distKeys)
	if err != nil {
		return domain.ClassifyResponse{}, err
	}

	return domain.ClassifyResponse{
		Shape:            shapeKey(shape),
		ShapeText:        shapeText,
		DistributionKeys: distKeys,
		Distribution:     distTexts,
	}, nil
}

// shapeTexts resolves the seeded texts for a verdict, absent texts stay nil
// or missing from the map
func (s *Svc) shapeTexts(ctx context.Context, shape chartshape.Shape, distKeys []string) (*string, map[string]string, error) {
	var shapeText *string
	if shape != chartshape.ShapeNone {
		text, ok, err := s.reader.ShapeText(ctx, string(shape))
		if err != nil {
			return nil, nil, err
		}
		if ok {
			shapeText = &text
		}
	}
	distTexts, err := s.reader.DistributionTexts(ctx, distKeys)
	if err != nil {
		return nil, nil, err
	}
	return shapeText, distTexts, nil
}

// record logs the outcome for frequency stats, failures only warn
func (s *Svc) record(ctx context.Context, id string, shape chartshape.Shape, distKeys []string) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.Record(ctx, statsdom.ReadingEvent{
		ReadingID:        id,
		Shape:            string(shape),
		DistributionKeys: distKeys,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("reading_id", id).Msg("reading stats record failed")
	}
}

func checkLocation(in domain.ChartRequest) error {
	if in.Lat != nil && in.Lng != nil && in.Timezone != "" {
		return nil
	}
	if in.City != "" {
		return nil
	}
	return perr.InvalidArgf("provide either city and nation or lat, lng and tz_str")
}

func shapeKey(s chartshape.Shape) *string {
	if s == chartshape.ShapeNone {
		return nil
	}
	k := string(s)
	return &k
}

func keyStrings(keys []distribution.Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}
