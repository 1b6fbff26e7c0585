package region

import (
	"testing"

	"github.com/aldenfall/dungeonkernel/pkg/grid"
)

// buildTwoBlobGrid creates a 10x5 grid with two disjoint floor blobs
// surrounded by wall: a 2x2 block at (1,1) and a 3x1 strip at (6,3).
func buildTwoBlobGrid() *grid.Grid {
	g := grid.New(10, 5, grid.Wall)
	g.FillRect(grid.BoundsFromRect(1, 1, 2, 2), grid.Floor)
	g.FillRect(grid.BoundsFromRect(6, 3, 3, 1), grid.Floor)
	return g
}

func TestFindRegionsBFSFindsDisjointBlobs(t *testing.T) {
	g := buildTwoBlobGrid()
	regions := FindRegionsBFS(g, grid.Floor, Options{})
	if len(regions) != 2 {
		t.Fatalf("len(regions) = %d, want 2", len(regions))
	}
	if regions[0].Size != 4 {
		t.Errorf("first region size = %d, want 4", regions[0].Size)
	}
	if regions[1].Size != 3 {
		t.Errorf("second region size = %d, want 3", regions[1].Size)
	}
}

func TestFindRegionsBFSMinSizeFilters(t *testing.T) {
	g := buildTwoBlobGrid()
	regions := FindRegionsBFS(g, grid.Floor, Options{MinSize: 4})
	if len(regions) != 1 {
		t.Fatalf("len(regions) = %d, want 1 after MinSize filter", len(regions))
	}
	if regions[0].Size != 4 {
		t.Errorf("surviving region size = %d, want 4", regions[0].Size)
	}
}

func TestFindRegionsBFSIDsSequential(t *testing.T) {
	g := buildTwoBlobGrid()
	regions := FindRegionsBFS(g, grid.Floor, Options{})
	for i, r := range regions {
		if r.ID != i {
			t.Errorf("region[%d].ID = %d, want %d", i, r.ID, i)
		}
	}
}

func TestFindRegionsBFSBoundsMatchBoundingBox(t *testing.T) {
	g := buildTwoBlobGrid()
	regions := FindRegionsBFS(g, grid.Floor, Options{})
	b := regions[0].Bounds
	if b.MinX != 1 || b.MinY != 1 || b.MaxX != 2 || b.MaxY != 2 {
		t.Fatalf("Bounds = %+v, want {1,1,2,2}", b)
	}
}

func TestFindRegionsUnionFindAgreesOnIdentityAndSize(t *testing.T) {
	g := buildTwoBlobGrid()
	bfs := FindRegionsBFS(g, grid.Floor, Options{})
	uf := FindRegionsUnionFind(g, grid.Floor, Options{})

	if len(bfs) != len(uf) {
		t.Fatalf("region count differs: bfs=%d union-find=%d", len(bfs), len(uf))
	}
	for i := range bfs {
		if bfs[i].Size != uf[i].Size {
			t.Errorf("region %d size differs: bfs=%d union-find=%d", i, bfs[i].Size, uf[i].Size)
		}
		if bfs[i].Bounds != uf[i].Bounds {
			t.Errorf("region %d bounds differ: bfs=%+v union-find=%+v", i, bfs[i].Bounds, uf[i].Bounds)
		}
	}
}

func TestFindRegionsDiagonalConnectivity(t *testing.T) {
	g := grid.New(3, 3, grid.Wall)
	g.Set(0, 0, grid.Floor)
	g.Set(1, 1, grid.Floor)
	g.Set(2, 2, grid.Floor)

	fourConn := FindRegionsBFS(g, grid.Floor, Options{Diagonal: false})
	if len(fourConn) != 3 {
		t.Fatalf("4-connected: len(regions) = %d, want 3 (no shared edges)", len(fourConn))
	}

	eightConn := FindRegionsBFS(g, grid.Floor, Options{Diagonal: true})
	if len(eightConn) != 1 {
		t.Fatalf("8-connected: len(regions) = %d, want 1 (diagonal chain)", len(eightConn))
	}
}

func TestUnionFindPathCompressionAndRank(t *testing.T) {
	uf := NewUnionFind(5)
	if !uf.Union(0, 1) {
		t.Fatal("first union of distinct sets should return true")
	}
	if uf.Union(0, 1) {
		t.Fatal("union of already-merged sets should return false")
	}
	uf.Union(2, 3)
	uf.Union(1, 3)
	if uf.Find(0) != uf.Find(2) {
		t.Fatal("0 and 2 should share a root after transitive unions")
	}
	if uf.Find(4) == uf.Find(0) {
		t.Fatal("4 was never unioned and should remain its own root")
	}
	// Merging two rank-1 trees keeps root 0 and raises its rank to 2.
	if uf.rank[0] != 2 {
		t.Fatalf("rank[0] = %d, want 2 after merging two rank-1 trees", uf.rank[0])
	}
	// 3 still hangs off 2; Find(3) halves the path so 3 points at root 0.
	uf.Find(3)
	if uf.parent[3] != 0 {
		t.Fatalf("parent[3] = %d after Find(3), want 0 (path halving)", uf.parent[3])
	}
}

func TestFloodFillBFSMarksReachableFloor(t *testing.T) {
	g := buildTwoBlobGrid()
	pool := grid.NewBitGridPool()
	mask, release := FloodFillBFS(pool, g.Width(), g.Height(), 1, 1, func(x, y int) bool {
		return g.Get(x, y) == grid.Floor
	})
	defer release()

	if !mask.Get(1, 1) || !mask.Get(2, 2) {
		t.Fatal("flood fill should mark the entire first blob")
	}
	if mask.Get(6, 3) {
		t.Fatal("flood fill should not cross into the disjoint second blob")
	}
}

func TestFloodFillBFSReleaseAllowsReuse(t *testing.T) {
	g := buildTwoBlobGrid()
	pool := grid.NewBitGridPool()
	mask1, release1 := FloodFillBFS(pool, g.Width(), g.Height(), 1, 1, func(x, y int) bool {
		return g.Get(x, y) == grid.Floor
	})
	release1()

	mask2, release2 := FloodFillBFS(pool, g.Width(), g.Height(), 6, 3, func(x, y int) bool {
		return g.Get(x, y) == grid.Floor
	})
	defer release2()

	if mask1 != mask2 {
		t.Fatal("expected the released mask to be reused for the second flood fill")
	}
	if mask2.Get(1, 1) {
		t.Fatal("reused mask should have been reset before the second flood fill")
	}
}
