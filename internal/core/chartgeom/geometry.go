// Package chartgeom provides circular-geometry primitives over ecliptic
// longitudes. All functions are pure and treat their input as points on a
// circle of circumference 360
package chartgeom

import (
	"math"
	"sort"
)

const (
	// handleGapMin is the minimum empty arc that can isolate a handle group
	handleGapMin = 100.0

	// DefaultClumpGap is the gap threshold that separates clumps
	DefaultClumpGap = 60.0

	seesawGapMin   = 100.0
	seesawGapMax   = 200.0
	seesawSplitGap = 150.0
	seesawOrbMax   = 60.0
)

// Normalize reduces any real degree value into [0,360) with floor-modulo
// semantics, so the result is always non-negative
func Normalize(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// AngularDistance returns the shortest separation between two points on the
// circle, in [0,180]
func AngularDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// circularGaps sorts the longitudes ascending and returns the sorted slice
// together with the n circular successor gaps, gaps[i] being the forward arc
// from sorted[i] to sorted[(i+1)%n]. The last gap wraps across 0°.
// Shared by LargestGap, HandleCount, ClumpCount and IsSeesaw so the
// sort-and-wrap logic lives in exactly one place
func circularGaps(lons []float64) (sorted, gaps []float64) {
	sorted = make([]float64, len(lons))
	for i, l := range lons {
		sorted[i] = Normalize(l)
	}
	sort.Float64s(sorted)

	n := len(sorted)
	gaps = make([]float64, n)
	for i := 0; i < n; i++ {
		next := sorted[(i+1)%n]
		gaps[i] = Normalize(next - sorted[i])
	}
	return sorted, gaps
}

// maxIndex returns the index of the largest value, first occurrence winning
// ties via the strict comparison
func maxIndex(vals []float64) int {
	idx := 0
	for i, v := range vals {
		if v > vals[idx] {
			idx = i
		}
	}
	return idx
}

// LargestGap returns the largest circular gap between consecutive sorted
// longitudes, wrapping the last point to the first. Fewer than 2 points is
// defined as 360 (no bound)
func LargestGap(lons []float64) float64 {
	if len(lons) < 2 {
		return 360
	}
	_, gaps := circularGaps(lons)
	return gaps[maxIndex(gaps)]
}

// Span returns the smallest arc containing every point, 360 - LargestGap.
// Fewer than 2 points is 0
func Span(lons []float64) float64 {
	if len(lons) < 2 {
		return 0
	}
	return 360 - LargestGap(lons)
}

// HandleCount returns the size of the smaller of the two groups isolated
// from each other by clear empty arcs, or 0 when the chart has no such
// isolated group.
//
// The sequence is taken in circular order starting just after the largest
// gap, which makes the result independent of where the points sit relative
// to 0° (rotating every longitude by a constant offset cannot change the
// answer). If the largest gap is under 100° the chart is too evenly
// distributed to have a handle; otherwise the run splits at its largest
// internal gap when that gap is also at least 100°
func HandleCount(lons []float64) int {
	if len(lons) < 3 {
		return 0
	}
	sorted, gaps := circularGaps(lons)
	n := len(sorted)

	openIdx := maxIndex(gaps)
	if gaps[openIdx] < handleGapMin {
		return 0
	}

	// internal gaps of the run that starts after the opening
	splitIdx, splitGap := -1, 0.0
	for k := 0; k < n-1; k++ {
		g := gaps[(openIdx+1+k)%n]
		if g > splitGap {
			splitIdx, splitGap = k, g
		}
	}
	if splitIdx < 0 || splitGap < handleGapMin {
		return 0
	}

	first := splitIdx + 1
	second := n - first
	if second < first {
		return second
	}
	return first
}

// ClumpCount partitions the points into maximal groups whose consecutive
// members sit within gapThreshold of each other, counting 1 plus the number
// of circular gaps strictly exceeding the threshold. Fewer than 2 points
// returns the point count. The wrap gap participates like any other, so two
// near points still count as 2
func ClumpCount(lons []float64, gapThreshold float64) int {
	if len(lons) < 2 {
		return len(lons)
	}
	_, gaps := circularGaps(lons)
	clumps := 1
	for _, g := range gaps {
		if g > gapThreshold {
			clumps++
		}
	}
	return clumps
}

// IsSeesaw reports whether the points form two groups roughly opposite each
// other with empty space on both sides.
//
// The group centers are simple arithmetic means of the raw sorted values,
// not circular means; a group straddling the 0°/360° boundary can therefore
// be misjudged
func IsSeesaw(lons []float64) bool {
	if len(lons) < 4 {
		return false
	}
	sorted, gaps := circularGaps(lons)
	n := len(sorted)

	largest := gaps[maxIndex(gaps)]
	if largest < seesawGapMin || largest > seesawGapMax {
		return false
	}

	// split at the first gap wide enough to separate the groups; when none
	// qualifies the split degenerates to a single leading point and the
	// size check below rejects
	splitIdx := 0
	for i := 0; i < n; i++ {
		if gaps[i] > seesawSplitGap {
			splitIdx = i
			break
		}
	}

	first := sorted[:splitIdx+1]
	second := sorted[splitIdx+1:]
	if len(first) < 2 || len(second) < 2 {
		return false
	}

	c1 := mean(first)
	c2 := mean(second)

	// wrap-aware deviation of the center separation from exact opposition
	return AngularDistance(c1-c2, 180) < seesawOrbMax
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
