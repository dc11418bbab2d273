// Package http provides http transport for interpretation lookups
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"natalchart/internal/modkit/httpkit"
	perr "natalchart/internal/platform/errors"
	"natalchart/internal/services/api/interpretations/domain"
	svc "natalchart/internal/services/api/interpretations/service"
)

// Register mounts interpretation endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/shapes/{key}", h.shape)
	httpkit.Get(r, "/distributions/{key}", h.distribution)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /interpretations/shapes/{key} Interpretations interpretationsShape
// @Summary Reading text for a chart shape
// @Tags Interpretations
// @Produce json
// @Param key path string true "Shape key" example(bowl)
// @Success 200 {object} domain.ShapeInterpretation "ok"
// @Failure 404 {object} httpkit.Envelope "unknown key"
// @Router /interpretations/shapes/{key} [get]
func (h *handlers) shape(r *stdhttp.Request) (any, error) {
	key := chi.URLParam(r, "key")
	text, ok, err := h.svc.ShapeText(r.Context(), key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, perr.NotFoundf("no interpretation for shape %q", key)
	}
	return domain.ShapeInterpretation{Key: key, Text: text}, nil
}

// swagger:route GET /interpretations/distributions/{key} Interpretations interpretationsDistribution
// @Summary Reading text for a hemisphere or quadrant emphasis
// @Tags Interpretations
// @Produce json
// @Param key path string true "Distribution key" example(hemisphere_northern)
// @Success 200 {object} domain.DistributionInterpretation "ok"
// @Failure 404 {object} httpkit.Envelope "unknown key"
// @Router /interpretations/distributions/{key} [get]
func (h *handlers) distribution(r *stdhttp.Request) (any, error) {
	key := chi.URLParam(r, "key")
	texts, err := h.svc.DistributionTexts(r.Context(), []string{key})
	if err != nil {
		return nil, err
	}
	text, ok := texts[key]
	if !ok {
		return nil, perr.NotFoundf("no interpretation for distribution %q", key)
	}
	return domain.DistributionInterpretation{Key: key, Text: text}, nil
}
