package module

import (
	"time"

	"natalchart/internal/platform/config"
)

// Options controls the ephemeris provider client settings
type Options struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads the EPHEMERIS_* keys of the service config view,
// so CORE_API_EPHEMERIS_* in the environment
func FromConfig(cfg config.Conf) Options {
	ec := cfg.Prefix("EPHEMERIS_")
	return Options{
		BaseURL:    ec.MustString("BASE_URL"),
		UserAgent:  ec.MayString("UA", "natalchart-api"),
		Timeout:    ec.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: ec.MayInt("MAX_RETRIES", 4),
		RetryBase:  ec.MayDuration("RETRY_BASE", 500*time.Millisecond),
	}
}
