// Package service contains stats workflows
package service

import (
	"context"
	"time"

	perr "natalchart/internal/platform/errors"
	"natalchart/internal/services/api/stats/domain"
	"natalchart/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo repo.Repo
	now  func() time.Time
}

// New creates a new stats service
func New(r repo.Repo) *Svc {
	if r == nil {
		panic("stats.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, now: time.Now}
}

// Record logs one computed reading event
func (s *Svc) Record(ctx context.Context, ev domain.ReadingEvent) error {
	if ev.ReadingID == "" {
		return perr.InvalidArgf("reading id required")
	}
	at := ev.RecordedAt
	if at.IsZero() {
		at = s.now().UTC()
	}
	return s.Repo.InsertReading(ctx, repo.RowReading{
		ReadingID:        ev.ReadingID,
		Shape:            ev.Shape,
		DistributionKeys: ev.DistributionKeys,
		RecordedAt:       at,
	})
}

// ShapeCounts returns the shape frequency breakdown
func (s *Svc) ShapeCounts(ctx context.Context) ([]domain.ShapeCount, error) {
	rows, err := s.Repo.ShapeCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ShapeCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.ShapeCount{Shape: r.Shape, Count: r.Count})
	}
	return out, nil
}
