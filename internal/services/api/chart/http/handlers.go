// Package http provides http transport for chart readings
package http

import (
	stdhttp "net/http"

	"natalchart/internal/modkit/httpkit"
	"natalchart/internal/services/api/chart/domain"
	svc "natalchart/internal/services/api/chart/service"
)

// Register mounts chart endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.ChartRequest](r, "/", h.compute)
	httpkit.PostJSON[domain.ClassifyRequest](r, "/classify", h.classify)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /charts Charts chartsCompute
// @Summary Compute a full natal chart reading
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.ChartRequest true "Birth data"
// @Success 200 {object} domain.Reading "ok"
// @Failure 400 {object} httpkit.Envelope "missing location"
// @Failure 502 {object} httpkit.Envelope "provider failure"
// @Router /charts [post]
func (h *handlers) compute(r *stdhttp.Request, in domain.ChartRequest) (any, error) {
	return h.svc.Compute(r.Context(), in)
}

// swagger:route POST /charts/classify Charts chartsClassify
// @Summary Classify raw positions into shape and distribution emphases
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyRequest true "Raw positions"
// @Success 200 {object} domain.ClassifyResponse "ok"
// @Router /charts/classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.ClassifyRequest) (any, error) {
	return h.svc.Classify(r.Context(), in)
}
