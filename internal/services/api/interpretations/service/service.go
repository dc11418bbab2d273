// Package service contains interpretation lookup workflows
package service

import (
	"context"
	"strconv"

	"natalchart/internal/modkit/repokit"
	"natalchart/internal/services/api/interpretations/domain"
	"natalchart/internal/services/api/interpretations/repo"
)

// Service defines the interpretations service contract
type Service interface{ domain.ReaderPort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new interpretations service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("interpretations.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("interpretations.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// ShapeText returns the reading text for a shape key when one is seeded
func (s *Svc) ShapeText(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}
	return s.Repo.ShapeText(ctx, key)
}

// DistributionTexts returns the seeded texts for the given distribution keys
func (s *Svc) DistributionTexts(ctx context.Context, keys []string) (map[string]string, error) {
	return s.Repo.DistributionTexts(ctx, keys)
}

// PlanetSignTexts returns texts keyed by the pair, missing pairs are absent
func (s *Svc) PlanetSignTexts(ctx context.Context, pairs []domain.PlanetSign) (map[string]string, error) {
	planets := make([]string, 0, len(pairs))
	signs := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.Planet == "" || p.Sign == "" {
			continue
		}
		planets = append(planets, p.Planet)
		signs = append(signs, p.Sign)
	}
	rows, err := s.Repo.PlanetSignTexts(ctx, planets, signs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for k, text := range rows {
		out[k[0]+" in "+k[1]] = text
	}
	return out, nil
}

// PlanetHouseTexts returns texts keyed by planet and house, missing pairs are absent
func (s *Svc) PlanetHouseTexts(ctx context.Context, pairs []domain.PlanetHouse) (map[string]string, error) {
	planets := make([]string, 0, len(pairs))
	houses := make([]int, 0, len(pairs))
	for _, p := range pairs {
		if p.Planet == "" || p.House < 1 || p.House > 12 {
			continue
		}
		planets = append(planets, p.Planet)
		houses = append(houses, p.House)
	}
	rows, err := s.Repo.PlanetHouseTexts(ctx, planets, houses)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	for planet, byHouse := range rows {
		for num, text := range byHouse {
			out[planet+" in House "+strconv.Itoa(num)] = text
		}
	}
	return out, nil
}
