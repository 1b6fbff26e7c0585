package grid

import "testing"

func TestBitGridSetGetClear(t *testing.T) {
	bg := NewBitGrid(10, 10)
	if bg.Get(3, 4) {
		t.Fatal("new BitGrid should be all clear")
	}
	bg.Set(3, 4)
	if !bg.Get(3, 4) {
		t.Fatal("Get should report set bit")
	}
	bg.Clear(3, 4)
	if bg.Get(3, 4) {
		t.Fatal("Get should report cleared bit")
	}
}

func TestBitGridOutOfBounds(t *testing.T) {
	bg := NewBitGrid(4, 4)
	if bg.Get(-1, 0) || bg.Get(0, -1) || bg.Get(4, 0) || bg.Get(0, 4) {
		t.Fatal("out-of-bounds Get should be false")
	}
	bg.Set(-1, 0)
	bg.Set(100, 100)
}

func TestBitGridSpansMultipleWords(t *testing.T) {
	bg := NewBitGrid(8, 8) // 64 bits, 2 words at wordBits=32
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			bg.Set(x, y)
		}
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !bg.Get(x, y) {
				t.Fatalf("Get(%d,%d) should be set", x, y)
			}
		}
	}
}

func TestBitGridReset(t *testing.T) {
	bg := NewBitGrid(6, 6)
	bg.Set(1, 1)
	bg.Set(5, 5)
	bg.Reset()
	if bg.Get(1, 1) || bg.Get(5, 5) {
		t.Fatal("Reset should clear all bits")
	}
}

func TestBitGridPoolReusesAfterRelease(t *testing.T) {
	pool := NewBitGridPool()
	a := pool.Acquire(10, 10)
	a.Set(2, 2)
	pool.Release(a)

	b := pool.Acquire(10, 10)
	if b.Get(2, 2) {
		t.Fatal("acquired BitGrid from pool should be reset")
	}
	if a != b {
		t.Fatal("expected the released grid to be reused (same backing struct)")
	}
}

func TestBitGridPoolDistinctSizes(t *testing.T) {
	pool := NewBitGridPool()
	a := pool.Acquire(5, 5)
	c := pool.Acquire(7, 7)
	if a.Width() == c.Width() && a.Height() == c.Height() {
		t.Fatal("expected distinct dimensions")
	}
	pool.Release(a)
	pool.Release(c)
}
