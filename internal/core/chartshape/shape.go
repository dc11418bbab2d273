// Package chartshape classifies natal-chart planet configurations into the
// seven Marc Edmund Jones shape patterns. Classification uses the ten
// classical bodies only (Sun through Pluto); Chiron, lunar nodes and any
// other extra bodies are excluded before the geometry runs
package chartshape

import (
	"natalchart/internal/core/chartgeom"
)

// Shape is one of the seven chart shape labels, or ShapeNone when the input
// has too few qualifying bodies to classify
type Shape string

// Shape labels. Values are stable: they key interpretation text lookups
const (
	ShapeNone       Shape = ""
	ShapeBundle     Shape = "bundle"
	ShapeBowl       Shape = "bowl"
	ShapeBucket     Shape = "bucket"
	ShapeLocomotive Shape = "locomotive"
	ShapeSeeSaw     Shape = "see_saw"
	ShapeSplay      Shape = "splay"
	ShapeSplash     Shape = "splash"
)

// Body is one positioned celestial body as supplied by the position provider
type Body struct {
	Name      string
	Longitude float64
}

// canonical is the fixed body set that participates in shape detection
var canonical = map[string]struct{}{
	"Sun": {}, "Moon": {}, "Mercury": {}, "Venus": {}, "Mars": {},
	"Jupiter": {}, "Saturn": {}, "Uranus": {}, "Neptune": {}, "Pluto": {},
}

// Canonical reports whether name belongs to the ten-body set used for shape
// detection (exact string match)
func Canonical(name string) bool {
	_, ok := canonical[name]
	return ok
}

// metrics bundles the geometry readings every rule predicate draws from,
// computed once per classification
type metrics struct {
	count      int
	span       float64
	largestGap float64
	handle     int
	clumps     int
	lons       []float64
}

// rule pairs a predicate with the shape it selects. Rules are evaluated in
// slice order and the first match wins: the order IS the tie-break policy,
// since several predicates can hold for the same configuration
type rule struct {
	match func(m metrics) bool
	shape Shape
}

var rules = []rule{
	// bucket: a bowl-sized main group plus 1-2 planets isolated opposite it
	{func(m metrics) bool {
		return (m.handle == 1 || m.handle == 2) && m.span <= 180 && m.count >= 5
	}, ShapeBucket},

	// bundle: everything within a trine
	{func(m metrics) bool { return m.span <= 120 }, ShapeBundle},

	// bowl: everything within half the circle
	{func(m metrics) bool { return m.span > 120 && m.span <= 180 }, ShapeBowl},

	// see-saw: two opposing groups
	{func(m metrics) bool { return chartgeom.IsSeesaw(m.lons) }, ShapeSeeSaw},

	// locomotive: roughly two thirds occupied, one clear empty trine
	{func(m metrics) bool {
		return m.span >= 200 && m.span <= 280 && m.largestGap >= 80
	}, ShapeLocomotive},

	// splay: three or more separated clumps
	{func(m metrics) bool { return m.clumps >= 3 }, ShapeSplay},

	// splash: widely and evenly spread, no dominating gap
	{func(m metrics) bool { return m.span >= 200 && m.largestGap < 80 }, ShapeSplash},
}

// Classify derives the chart shape from the supplied bodies. Bodies outside
// the canonical ten are ignored; fewer than 3 qualifying bodies yields
// ShapeNone (insufficient data, not an error). The classification is
// deterministic and independent of input order
func Classify(bodies []Body) Shape {
	lons := make([]float64, 0, len(bodies))
	for _, b := range bodies {
		if Canonical(b.Name) {
			lons = append(lons, chartgeom.Normalize(b.Longitude))
		}
	}
	if len(lons) < 3 {
		return ShapeNone
	}

	m := metrics{
		count:      len(lons),
		span:       chartgeom.Span(lons),
		largestGap: chartgeom.LargestGap(lons),
		handle:     chartgeom.HandleCount(lons),
		clumps:     chartgeom.ClumpCount(lons, chartgeom.DefaultClumpGap),
		lons:       lons,
	}

	for _, r := range rules {
		if r.match(m) {
			return r.shape
		}
	}
	// irregular configurations that matched nothing fold into splay
	return ShapeSplay
}
