// Package repo provides clickhouse access for reading stats
package repo

import (
	"context"
	"time"

	"natalchart/internal/platform/store"
)

// Repo is the minimal columnar surface for stats
type Repo interface {
	InsertReading(ctx context.Context, row RowReading) error
	ShapeCounts(ctx context.Context) ([]RowShapeCount, error)
}

// RowReading is one reading event row
type RowReading struct {
	ReadingID        string
	Shape            string
	DistributionKeys []string
	RecordedAt       time.Time
}

// RowShapeCount is one shape frequency row
type RowShapeCount struct {
	Shape string
	Count uint64
}

// CH implements the Repo interface over the platform clickhouse seam
type CH struct{ ch store.Clickhouse }

// NewCH wires the clickhouse seam to the repo
func NewCH(ch store.Clickhouse) *CH {
	if ch == nil {
		panic("stats.Repo requires a non nil Clickhouse")
	}
	return &CH{ch: ch}
}

var readingCols = []string{"reading_id", "shape", "distribution_keys", "recorded_at"}

// InsertReading appends one event row to chart_readings
func (r *CH) InsertReading(ctx context.Context, row RowReading) error {
	data := [][]any{{row.ReadingID, row.Shape, row.DistributionKeys, row.RecordedAt}}
	return r.ch.Insert(ctx, "chart_readings", readingCols, data)
}

// ShapeCounts aggregates recorded readings by shape
func (r *CH) ShapeCounts(ctx context.Context) ([]RowShapeCount, error) {
	const sql = `
select shape, count() as readings
from chart_readings
where shape != ''
group by shape
order by readings desc, shape asc
`
	rows, err := r.ch.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowShapeCount
	for rows.Next() {
		var rr RowShapeCount
		if err := rows.Scan(&rr.Shape, &rr.Count); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
