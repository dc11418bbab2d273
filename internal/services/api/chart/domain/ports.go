package domain

import (
	"context"

	"natalchart/internal/adapters/ephemeris"
)

// ProviderPort computes raw chart positions, satisfied by the ephemeris client
type ProviderPort interface {
	NatalChart(ctx context.Context, birth ephemeris.BirthData) (ephemeris.Chart, error)
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Compute(ctx context.Context, in ChartRequest) (Reading, error)
	Classify(ctx context.Context, in ClassifyRequest) (ClassifyResponse, error)
}
