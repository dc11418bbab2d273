// Package module wires charts into the API using modkit
package module

import (
	"net/http"

	"natalchart/internal/adapters/ephemeris"
	modkit "natalchart/internal/modkit"
	"natalchart/internal/modkit/httpkit"
	str "natalchart/internal/platform/strings"

	charthttp "natalchart/internal/services/api/chart/http"
	chartsvc "natalchart/internal/services/api/chart/service"
	interpdom "natalchart/internal/services/api/interpretations/domain"
	statsdom "natalchart/internal/services/api/stats/domain"
)

// Module implements the chart API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc chartsvc.Service
}

// Ports declares the cross module ports this module consumes
// Recorder may stay nil when stats are disabled
type Ports struct {
	Reader   interpdom.ReaderPort
	Recorder statsdom.RecorderPort
}

// New constructs the chart module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("charts"),
		modkit.WithPrefix("/charts"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Reader == nil {
		panic("chart API module requires Reader port (from services/api/interpretations)")
	}

	provider := ephemeris.NewClient(ephemeris.Options{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryBase:  cfg.RetryBase,
	})

	svc := chartsvc.New(provider, injected.Reader, injected.Recorder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptChartPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		charthttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
