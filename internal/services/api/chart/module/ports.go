package module

import (
	"context"

	chartdom "natalchart/internal/services/api/chart/domain"
	chartsvc "natalchart/internal/services/api/chart/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptChartPort exposes service methods as module ports for cross-module usage
type adaptChartPort struct{ svc chartsvc.Service }

func (a adaptChartPort) Compute(ctx context.Context, in chartdom.ChartRequest) (chartdom.Reading, error) {
	return a.svc.Compute(ctx, in)
}

func (a adaptChartPort) Classify(ctx context.Context, in chartdom.ClassifyRequest) (chartdom.ClassifyResponse, error) {
	return a.svc.Classify(ctx, in)
}
