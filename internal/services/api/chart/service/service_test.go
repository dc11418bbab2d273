package service

import (
	"context"
	"testing"

	"natalchart/internal/adapters/ephemeris"
	perr "natalchart/internal/platform/errors"
	"natalchart/internal/platform/testkit"
	"natalchart/internal/services/api/chart/domain"
	interpdom "natalchart/internal/services/api/interpretations/domain"
	statsdom "natalchart/internal/services/api/stats/domain"
)

type fakeProvider struct {
	chart ephemeris.Chart
	err   error
	got   ephemeris.BirthData
}

func (f *fakeProvider) NatalChart(_ context.Context, birth ephemeris.BirthData) (ephemeris.Chart, error) {
	f.got = birth
	return f.chart, f.err
}

type fakeReader struct {
	shapes map[string]string
	dists  map[string]string
}

func (f *fakeReader) ShapeText(_ context.Context, key string) (string, bool, error) {
	t, ok := f.shapes[key]
	return t, ok, nil
}

func (f *fakeReader) DistributionTexts(_ context.Context, keys []string) (map[string]string, error) {
	out := map[string]string{}
	for _, k := range keys {
		if t, ok := f.dists[k]; ok {
			out[k] = t
		}
	}
	return out, nil
}

func (f *fakeReader) PlanetSignTexts(_ context.Context, pairs []interpdom.PlanetSign) (map[string]string, error) {
	out := map[string]string{}
	for _, p := range pairs {
		if p.Planet == "Sun" {
			out[p.Planet+" in "+p.Sign] = "sun text"
		}
	}
	return out, nil
}

func (f *fakeReader) PlanetHouseTexts(_ context.Context, pairs []interpdom.PlanetHouse) (map[string]string, error) {
	return map[string]string{}, nil
}

type fakeRecorder struct {
	events []statsdom.ReadingEvent
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, ev statsdom.ReadingEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

// bundleChart packs the ten classical bodies within a trine, all in house 1,
// plus two extras that must not affect shape detection
func bundleChart() ephemeris.Chart {
	names := []string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}
	planets := make([]ephemeris.BodyPosition, 0, len(names)+2)
	for i, n := range names {
		planets = append(planets, ephemeris.BodyPosition{
			Name: n, Sign: "Aries", AbsDegree: float64(i * 10), House: 1,
		})
	}
	planets = append(planets,
		ephemeris.BodyPosition{Name: "Chiron", Sign: "Libra", AbsDegree: 200, House: 7},
		ephemeris.BodyPosition{Name: "true_north_lunar_node", Sign: "Leo", AbsDegree: 140, House: 5},
	)
	return ephemeris.Chart{
		Name:          "Test Subject",
		BirthDatetime: "1990-06-15T12:00",
		SunSign:       "Gemini",
		MoonSign:      "Pisces",
		RisingSign:    "Virgo",
		Planets:       planets,
		Houses:        []ephemeris.HouseCusp{{Number: 1, Sign: "Virgo", AbsDegree: 153.2}},
	}
}

func coords() (lat, lng float64) { return 40.7128, -74.006 }

func validRequest() domain.ChartRequest {
	lat, lng := coords()
	return domain.ChartRequest{
		Year: 1990, Month: 6, Day: 15, Hour: 12,
		Lat: &lat, Lng: &lng, Timezone: "America/New_York",
	}
}

func TestNewPanicsOnNilPorts(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, &fakeReader{}, nil) })
	testkit.MustPanic(t, func() { New(&fakeProvider{}, nil, nil) })
}

func TestComputeRequiresLocation(t *testing.T) {
	s := New(&fakeProvider{}, &fakeReader{}, nil)
	_, err := s.Compute(context.Background(), domain.ChartRequest{Year: 1990, Month: 6, Day: 15})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v want invalid argument", err)
	}
}

func TestComputeAssemblesReading(t *testing.T) {
	provider := &fakeProvider{chart: bundleChart()}
	reader := &fakeReader{
		shapes: map[string]string{"bundle": "tight focus"},
		dists:  map[string]string{"hemisphere_southern": "inward"},
	}
	recorder := &fakeRecorder{}
	s := New(provider, reader, recorder)
	s.newID = func() string { return "fixed-id" }

	out, err := s.Compute(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if provider.got.Timezone != "America/New_York" {
		t.Errorf("provider got tz %q", provider.got.Timezone)
	}
	if out.ID != "fixed-id" {
		t.Errorf("ID = %q", out.ID)
	}
	if out.Shape == nil || *out.Shape != "bundle" {
		t.Errorf("Shape = %v", out.Shape)
	}
	// ten bodies in house 1 against twelve total placements
	want := []string{"hemisphere_southern", "hemisphere_eastern", "quadrant_1"}
	if len(out.DistributionKeys) != len(want) {
		t.Fatalf("DistributionKeys = %v", out.DistributionKeys)
	}
	for i, k := range want {
		if out.DistributionKeys[i] != k {
			t.Errorf("DistributionKeys[%d] = %q want %q", i, out.DistributionKeys[i], k)
		}
	}
	if out.Interpretations.ChartShape.Interpretation == nil || *out.Interpretations.ChartShape.Interpretation != "tight focus" {
		t.Errorf("shape interpretation = %v", out.Interpretations.ChartShape.Interpretation)
	}
	if out.Interpretations.ChartShape.Distribution["hemisphere_southern"] != "inward" {
		t.Errorf("distribution texts = %v", out.Interpretations.ChartShape.Distribution)
	}
	if out.Interpretations.PlanetInSign["Sun in Aries"] != "sun text" {
		t.Errorf("planet sign texts = %v", out.Interpretations.PlanetInSign)
	}
	// node spelling from the wire is folded for display
	if got := out.Planets[11].Name; got != "True North Lunar Node" {
		t.Errorf("node name = %q", got)
	}
	if len(recorder.events) != 1 || recorder.events[0].ReadingID != "fixed-id" || recorder.events[0].Shape != "bundle" {
		t.Errorf("recorded = %+v", recorder.events)
	}
}

func TestComputeSurvivesRecorderFailure(t *testing.T) {
	s := New(&fakeProvider{chart: bundleChart()}, &fakeReader{}, &fakeRecorder{err: perr.Unavailablef("ch down")})
	out, err := s.Compute(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if out.Shape == nil {
		t.Errorf("Shape = nil")
	}
}

func TestComputePropagatesProviderError(t *testing.T) {
	s := New(&fakeProvider{err: perr.Upstreamf("ephemeris down")}, &fakeReader{}, nil)
	_, err := s.Compute(context.Background(), validRequest())
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("err = %v want upstream", err)
	}
}

func TestClassifyDegenerateInputIsNullNotError(t *testing.T) {
	s := New(&fakeProvider{}, &fakeReader{}, nil)

	out, err := s.Classify(context.Background(), domain.ClassifyRequest{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if out.Shape != nil {
		t.Errorf("Shape = %v want nil", out.Shape)
	}
	if len(out.DistributionKeys) != 0 {
		t.Errorf("DistributionKeys = %v", out.DistributionKeys)
	}
}

func TestClassifyFoldsNameSpelling(t *testing.T) {
	reader := &fakeReader{shapes: map[string]string{"bundle": "tight focus"}}
	s := New(&fakeProvider{}, reader, nil)

	names := []string{"sun", "MOON", "mercury", "venus", "mars", "jupiter", "saturn", "uranus", "neptune", "pluto"}
	in := domain.ClassifyRequest{}
	for i, n := range names {
		in.Bodies = append(in.Bodies, domain.BodyInput{Name: n, Longitude: float64(i * 10), House: 1})
	}

	out, err := s.Classify(context.Background(), in)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if out.Shape == nil || *out.Shape != "bundle" {
		t.Fatalf("Shape = %v want bundle", out.Shape)
	}
	if out.ShapeText == nil || *out.ShapeText != "tight focus" {
		t.Errorf("ShapeText = %v", out.ShapeText)
	}
}
