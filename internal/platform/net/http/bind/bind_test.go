package bind

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	perr "natalchart/internal/platform/errors"
)

type payload struct {
	Name      string  `json:"name" validate:"required,min=2"`
	Longitude float64 `json:"longitude" validate:"finite,gte=0,lt=360"`
}

func TestParseJSONOK(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Sun","longitude":123.5}`))
	got, err := ParseJSON[payload](r)
	if err != nil {
		t.Fatalf("ParseJSON err: %v", err)
	}
	if got.Name != "Sun" || got.Longitude != 123.5 {
		t.Fatalf("ParseJSON = %+v", got)
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(""))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("empty body err = %v, want JSON code", err)
	}

	// GET tolerates an empty body
	rg := httptest.NewRequest("GET", "/", strings.NewReader(""))
	if _, err := ParseJSON[payload](rg); err != nil {
		t.Fatalf("GET empty body err = %v", err)
	}
}

func TestParseJSONUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Sun","longitude":1,"bogus":true}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field err = %v, want JSON code", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Sun","longitude":1}{"again":1}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data err = %v, want JSON code", err)
	}
}

func TestParseJSONValidation(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"S","longitude":1}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("validation err = %v, want Validation code", err)
	}
	// json tag name should appear in the translated message
	if !strings.Contains(err.Error(), "name") {
		t.Fatalf("validation message should use json tag name, got %q", err.Error())
	}
}

func TestFiniteTag(t *testing.T) {
	v := Get().Validator
	if err := v.Struct(payload{Name: "Sun", Longitude: 12}); err != nil {
		t.Fatalf("finite should accept 12: %v", err)
	}
	if err := v.Struct(payload{Name: "Sun", Longitude: math.NaN()}); err == nil {
		t.Fatalf("finite should reject NaN")
	}
	if err := v.Struct(payload{Name: "Sun", Longitude: math.Inf(1)}); err == nil {
		t.Fatalf("finite should reject +Inf")
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"","longitude":1}`))
	_, err := ParseJSON[payload](r)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	// error carries the translated first-failure message
	if msg := err.Error(); msg == "" {
		t.Fatalf("empty validation message")
	}
}
