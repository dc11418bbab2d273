package distribution

import (
	"reflect"
	"testing"
)

func TestAnalyzeEmptyAndInvalid(t *testing.T) {
	if got := Analyze(nil); len(got) != 0 {
		t.Fatalf("Analyze(nil) = %v, want empty", got)
	}
	if got := Analyze([]int{0, 13, -4, 99}); len(got) != 0 {
		t.Fatalf("Analyze(all invalid) = %v, want empty", got)
	}
}

func TestAnalyzeSouthernFirstQuadrant(t *testing.T) {
	got := Analyze([]int{1, 2, 3, 2, 1})
	want := []Key{HemisphereSouthern, HemisphereEastern, Quadrant1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Analyze = %v, want %v", got, want)
	}
}

func TestAnalyzeSingleHouseRepeated(t *testing.T) {
	got := Analyze([]int{6, 6, 6, 6})
	want := []Key{HemisphereSouthern, HemisphereWestern, Quadrant2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Analyze = %v, want %v", got, want)
	}
}

func TestAnalyzeExactHalfDoesNotQualify(t *testing.T) {
	// 2/2 between complementary hemispheres: neither reaches a strict
	// majority, and no quadrant does either
	got := Analyze([]int{1, 2, 7, 8})
	if len(got) != 0 {
		t.Fatalf("Analyze = %v, want empty at the exact-half boundary", got)
	}
}

func TestAnalyzeDiscardsInvalidBeforeCounting(t *testing.T) {
	// the two zeros must not inflate the total: 3 valid houses, all in
	// quadrant 4 and both of its hemispheres
	got := Analyze([]int{10, 11, 12, 0, 0})
	want := []Key{HemisphereNorthern, HemisphereEastern, Quadrant4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Analyze = %v, want %v", got, want)
	}
}

func TestAnalyzeMultipleSimultaneousKeys(t *testing.T) {
	// ten placements concentrated below the horizon on the ascendant side
	got := Analyze([]int{1, 1, 2, 2, 3, 3, 3, 2, 1, 12})
	want := []Key{HemisphereSouthern, HemisphereEastern, Quadrant1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Analyze = %v, want %v", got, want)
	}
}
