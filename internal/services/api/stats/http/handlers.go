// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"natalchart/internal/modkit/httpkit"
	svc "natalchart/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/shapes", h.shapes)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /stats/shapes Stats statsShapes
// @Summary Frequency of computed chart shapes
// @Tags Stats
// @Produce json
// @Success 200 {array} domain.ShapeCount "ok"
// @Router /stats/shapes [get]
func (h *handlers) shapes(r *stdhttp.Request) (any, error) {
	return h.svc.ShapeCounts(r.Context())
}
