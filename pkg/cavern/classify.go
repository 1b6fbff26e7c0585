package cavern

import "github.com/aldenfall/dungeonkernel/pkg/region"

// Classification pairs a region with its fill ratio: cell count divided
// by its bounding box area. A ratio near 1 is room-shaped; a low ratio is
// a sprawling, organic cavern.
type Classification struct {
	Region    region.Region
	FillRatio float64
}

// Classify computes a Classification for every region, preserving input order.
func Classify(regions []region.Region) []Classification {
	out := make([]Classification, len(regions))
	for i, r := range regions {
		area := r.Bounds.Width() * r.Bounds.Height()
		ratio := 0.0
		if area > 0 {
			ratio = float64(r.Size) / float64(area)
		}
		out[i] = Classification{Region: r, FillRatio: ratio}
	}
	return out
}

// FilterSuitable returns the regions (in input order) whose fill ratio is
// at least minFillRatio and whose size is at least minSize.
func FilterSuitable(classifications []Classification, minFillRatio float64, minSize int) []region.Region {
	var out []region.Region
	for _, c := range classifications {
		if c.FillRatio >= minFillRatio && c.Region.Size >= minSize {
			out = append(out, c.Region)
		}
	}
	return out
}

// Largest returns the region with the greatest cell count, tie-broken by
// the lowest region id. Returns ok=false for an empty input.
func Largest(regions []region.Region) (region.Region, bool) {
	if len(regions) == 0 {
		return region.Region{}, false
	}
	best := regions[0]
	for _, r := range regions[1:] {
		if r.Size > best.Size || (r.Size == best.Size && r.ID < best.ID) {
			best = r
		}
	}
	return best, true
}
