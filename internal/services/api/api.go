// Package api provides the HTTP API for the application
package api

import (
	"natalchart/internal/platform/config"
	"natalchart/internal/platform/logger"
	phttp "natalchart/internal/platform/net/http"
	"natalchart/internal/platform/store"

	"natalchart/internal/modkit"
	"natalchart/internal/modkit/httpkit"
	"natalchart/internal/modkit/module"
	"natalchart/internal/modkit/swaggerkit"

	chartmod "natalchart/internal/services/api/chart/module"
	interpmod "natalchart/internal/services/api/interpretations/module"
	metamod "natalchart/internal/services/api/meta/module"
	statsmod "natalchart/internal/services/api/stats/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// construct the text and stats modules first and extract their ports
	interpretations := interpmod.New(deps)
	reader := module.MustPortsOf[interpmod.Ports](interpretations).Reader

	stats := statsmod.New(deps)
	recorder := module.MustPortsOf[statsmod.Ports](stats).Recorder

	// the chart module consumes both
	charts := chartmod.New(
		deps,
		modkit.WithPorts(chartmod.Ports{
			Reader:   reader,
			Recorder: recorder,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		interpretations,
		stats,
		charts,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
