package repo

import (
	"context"
	"testing"
	"time"

	"natalchart/internal/platform/store"
	"natalchart/internal/platform/testkit"
)

type fakeCH struct {
	table string
	cols  []string
	data  any

	rows   *fakeRows
	sql    string
	queErr error
}

func (f *fakeCH) Insert(_ context.Context, table string, cols []string, data any) error {
	f.table, f.cols, f.data = table, cols, data
	return nil
}

func (f *fakeCH) Query(_ context.Context, sql string, _ ...any) (store.Rows, error) {
	f.sql = sql
	if f.queErr != nil {
		return nil, f.queErr
	}
	return f.rows, nil
}

func (f *fakeCH) Exec(context.Context, string, ...any) error { return nil }
func (f *fakeCH) Close() error                               { return nil }

type fakeRows struct {
	data [][]any
	pos  int
}

func (r *fakeRows) Next() bool { r.pos++; return r.pos <= len(r.data) }

func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	*dest[0].(*string) = row[0].(string)
	*dest[1].(*uint64) = row[1].(uint64)
	return nil
}

func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return []string{"shape", "readings"} }

func TestNewCHPanicsOnNil(t *testing.T) {
	testkit.MustPanic(t, func() { NewCH(nil) })
}

func TestInsertReadingShapesBatch(t *testing.T) {
	f := &fakeCH{}
	r := NewCH(f)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	err := r.InsertReading(context.Background(), RowReading{
		ReadingID:        "r-1",
		Shape:            "bowl",
		DistributionKeys: []string{"quadrant_1"},
		RecordedAt:       at,
	})
	if err != nil {
		t.Fatalf("InsertReading: %v", err)
	}
	if f.table != "chart_readings" {
		t.Errorf("table = %q", f.table)
	}
	if len(f.cols) != 4 || f.cols[0] != "reading_id" {
		t.Errorf("cols = %v", f.cols)
	}
	rows, ok := f.data.([][]any)
	if !ok || len(rows) != 1 || rows[0][1] != "bowl" {
		t.Errorf("data = %v", f.data)
	}
}

func TestShapeCountsScansRows(t *testing.T) {
	f := &fakeCH{rows: &fakeRows{data: [][]any{
		{"splash", uint64(9)},
		{"bowl", uint64(4)},
	}}}
	r := NewCH(f)

	out, err := r.ShapeCounts(context.Background())
	if err != nil {
		t.Fatalf("ShapeCounts: %v", err)
	}
	if len(out) != 2 || out[0].Shape != "splash" || out[0].Count != 9 {
		t.Errorf("out = %v", out)
	}
}
