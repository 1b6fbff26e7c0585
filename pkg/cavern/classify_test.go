package cavern

import (
	"testing"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
	"github.com/aldenfall/dungeonkernel/pkg/region"
)

func TestClassifyComputesFillRatio(t *testing.T) {
	// A 2x2 fully filled region: ratio 1.0.
	square := region.Region{ID: 0, Size: 4, Bounds: grid.BoundsFromRect(0, 0, 2, 2)}
	// An L-shaped 3-cell region inside a 2x2 box: ratio 0.75.
	lshape := region.Region{ID: 1, Size: 3, Bounds: grid.BoundsFromRect(0, 0, 2, 2)}

	classes := Classify([]region.Region{square, lshape})
	if classes[0].FillRatio != 1.0 {
		t.Errorf("square fill ratio = %v, want 1.0", classes[0].FillRatio)
	}
	if classes[1].FillRatio != 0.75 {
		t.Errorf("L-shape fill ratio = %v, want 0.75", classes[1].FillRatio)
	}
}

func TestFilterSuitableAppliesThresholds(t *testing.T) {
	regions := []region.Region{
		{ID: 0, Size: 4, Bounds: grid.BoundsFromRect(0, 0, 2, 2)},
		{ID: 1, Size: 1, Bounds: grid.BoundsFromRect(0, 0, 4, 4)},
	}
	classes := Classify(regions)
	suitable := FilterSuitable(classes, 0.5, 2)
	if len(suitable) != 1 || suitable[0].ID != 0 {
		t.Fatalf("suitable = %+v, want only region 0", suitable)
	}
}

func TestLargestTieBreaksByLowestID(t *testing.T) {
	regions := []region.Region{
		{ID: 3, Size: 10},
		{ID: 1, Size: 10},
		{ID: 2, Size: 5},
	}
	best, ok := Largest(regions)
	if !ok || best.ID != 1 {
		t.Fatalf("Largest = %+v, want region id 1 (tie broken by lowest id)", best)
	}
}

func TestLargestEmptyReturnsFalse(t *testing.T) {
	_, ok := Largest(nil)
	if ok {
		t.Fatal("Largest(nil) should return ok=false")
	}
}

func TestManhattanDistanceBetweenCenters(t *testing.T) {
	a := region.Region{Bounds: grid.BoundsFromRect(0, 0, 1, 1)}
	b := region.Region{Bounds: grid.BoundsFromRect(3, 4, 1, 1)}
	if d := ManhattanDistance(a, b); d != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", d)
	}
}

func TestNearestPointPairFindsClosest(t *testing.T) {
	a := []grid.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}
	b := []grid.Point{{X: 6, Y: 6}, {X: 100, Y: 100}}
	pa, pb := NearestPointPair(a, b)
	if pa != (grid.Point{X: 5, Y: 5}) || pb != (grid.Point{X: 6, Y: 6}) {
		t.Fatalf("NearestPointPair = (%+v, %+v), want ((5,5),(6,6))", pa, pb)
	}
}
