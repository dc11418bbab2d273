package ephemeris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	perr "natalchart/internal/platform/errors"
)

func testChart() Chart {
	spd := -0.12
	return Chart{
		Name:          "Test Subject",
		BirthDatetime: "1990-06-15T12:00",
		Latitude:      40.7128,
		Longitude:     -74.006,
		SunSign:       "Gemini",
		MoonSign:      "Pisces",
		RisingSign:    "Virgo",
		LunarPhase:    LunarPhase{DegreesBetween: 273.5, PhaseName: "Last Quarter", Emoji: "🌗"},
		Planets: []BodyPosition{
			{Name: "Sun", Sign: "Gemini", SignNum: 2, Degree: 24.1, AbsDegree: 84.1, House: 10},
			{Name: "true_north_lunar_node", Sign: "Aquarius", SignNum: 10, Degree: 8.3, AbsDegree: 308.3, House: 6, Retrograde: true, Speed: &spd},
		},
		Houses: []HouseCusp{{Number: 1, Sign: "Virgo", Degree: 3.2, AbsDegree: 153.2}},
	}
}

func newTestClient(t *testing.T, h http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(Options{BaseURL: srv.URL, MaxRetries: 2, RetryBase: time.Millisecond})
	c.sleep = func(time.Duration) {}
	return c, srv
}

func TestNatalChartDecodesPayload(t *testing.T) {
	var gotBody BirthData
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/chart" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(testChart())
	}))

	lat, lng := 40.7128, -74.006
	out, err := c.NatalChart(context.Background(), BirthData{
		Year: 1990, Month: 6, Day: 15, Hour: 12,
		Lat: &lat, Lng: &lng, Timezone: "America/New_York",
		Name: "Test Subject",
	})
	if err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	if gotBody.Timezone != "America/New_York" {
		t.Errorf("request tz = %q", gotBody.Timezone)
	}
	if out.SunSign != "Gemini" || len(out.Planets) != 2 {
		t.Errorf("unexpected chart %+v", out)
	}
	if got := out.Planets[1].DisplayName(); got != "True North Lunar Node" {
		t.Errorf("DisplayName = %q", got)
	}
}

func TestNatalChartRetriesTransientThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(testChart())
	}))

	if _, err := c.NatalChart(context.Background(), BirthData{Year: 1990, Month: 6, Day: 15}); err != nil {
		t.Fatalf("NatalChart: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d want 2", calls.Load())
	}
}

func TestNatalChartRejectionIsInvalidArgument(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"tz required with lat/lng"}`))
	}))

	_, err := c.NatalChart(context.Background(), BirthData{Year: 1990, Month: 6, Day: 15})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("err = %v want invalid argument", err)
	}
}

func TestNatalChartGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.NatalChart(context.Background(), BirthData{Year: 1990, Month: 6, Day: 15})
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("err = %v want upstream", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d want 3", calls.Load())
	}
}

func TestHealthy(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	if err := c.Healthy(context.Background()); err != nil {
		t.Fatalf("Healthy: %v", err)
	}
}
