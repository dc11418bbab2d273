// Package distribution derives hemisphere and quadrant emphases from the
// house placements of a chart. The two hemisphere axes and the quadrant ring
// are independent partitions of the twelve houses, so several keys can
// qualify at once
package distribution

// Key identifies one hemisphere or quadrant region. Values are stable: they
// key interpretation text lookups
type Key string

// Region keys
const (
	HemisphereNorthern Key = "hemisphere_northern"
	HemisphereSouthern Key = "hemisphere_southern"
	HemisphereEastern  Key = "hemisphere_eastern"
	HemisphereWestern  Key = "hemisphere_western"
	Quadrant1          Key = "quadrant_1"
	Quadrant2          Key = "quadrant_2"
	Quadrant3          Key = "quadrant_3"
	Quadrant4          Key = "quadrant_4"
)

// region is a fixed subset of the houses 1..12, kept as a bitmask for cheap
// membership tests
type region struct {
	key    Key
	houses uint16
}

func mask(houses ...int) uint16 {
	var m uint16
	for _, h := range houses {
		m |= 1 << h
	}
	return m
}

// regions is evaluated in order, which fixes the output ordering:
// hemispheres first, then quadrants
var regions = []region{
	{HemisphereNorthern, mask(7, 8, 9, 10, 11, 12)}, // above the horizon
	{HemisphereSouthern, mask(1, 2, 3, 4, 5, 6)},    // below the horizon
	{HemisphereEastern, mask(10, 11, 12, 1, 2, 3)},  // ascendant side
	{HemisphereWestern, mask(4, 5, 6, 7, 8, 9)},     // descendant side
	{Quadrant1, mask(1, 2, 3)},
	{Quadrant2, mask(4, 5, 6)},
	{Quadrant3, mask(7, 8, 9)},
	{Quadrant4, mask(10, 11, 12)},
}

// Analyze returns the region keys holding a strict majority of the supplied
// house placements. Houses outside 1..12 are discarded; when nothing valid
// remains the result is empty. A region qualifies only when its count is
// strictly greater than half the valid total, so an exact half is not an
// emphasis
func Analyze(houses []int) []Key {
	valid := make([]int, 0, len(houses))
	for _, h := range houses {
		if h >= 1 && h <= 12 {
			valid = append(valid, h)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	half := float64(len(valid)) / 2

	var out []Key
	for _, r := range regions {
		count := 0
		for _, h := range valid {
			if r.houses&(1<<h) != 0 {
				count++
			}
		}
		if float64(count) > half {
			out = append(out, r.key)
		}
	}
	return out
}
