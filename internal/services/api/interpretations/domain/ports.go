package domain

import "context"

// ReaderPort is consumed by handlers and by the chart module
// absence of a text is reported through the ok flag or a missing map key,
// never as an error
type ReaderPort interface {
	ShapeText(ctx context.Context, key string) (string, bool, error)
	DistributionTexts(ctx context.Context, keys []string) (map[string]string, error)
	PlanetSignTexts(ctx context.Context, pairs []PlanetSign) (map[string]string, error)
	PlanetHouseTexts(ctx context.Context, pairs []PlanetHouse) (map[string]string, error)
}
