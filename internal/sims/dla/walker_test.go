package dla

import (
	"math/rand/v2"
	"testing"
)

// scriptedRand replays fixed draws, cycling when exhausted.
type scriptedRand struct {
	vals  []int
	calls int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++
	return v % n
}

func TestFieldMonotonic(t *testing.T) {
	f := NewField(4, 3)
	if f.Count() != 0 {
		t.Fatalf("new field should be empty, got %d occupied", f.Count())
	}
	if !f.SetOccupied(2, 1) {
		t.Fatal("first SetOccupied should report a new cell")
	}
	if f.SetOccupied(2, 1) {
		t.Fatal("second SetOccupied on the same cell should be a no-op")
	}
	if !f.Occupied(2, 1) || f.Count() != 1 {
		t.Fatalf("cell (2,1) occupied=%v count=%d", f.Occupied(2, 1), f.Count())
	}
	if f.Occupied(1, 2) {
		t.Fatal("row-major indexing mixed up x and y")
	}
	if f.Contains(4, 0) || f.Contains(0, 3) || f.Contains(-1, 0) || !f.Contains(3, 2) {
		t.Fatal("Contains disagrees with the field bounds")
	}
}

func TestAloneAdjacency(t *testing.T) {
	offsets := [][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}, {1, -1}, {-1, -1}, {1, 1}, {-1, 1}}
	for _, off := range offsets {
		f := NewField(10, 10)
		f.SetOccupied(5+off[0], 5+off[1])
		p := Walker{X: 5, Y: 5}
		if p.Alone(f) {
			t.Fatalf("neighbour at offset %v should make (5,5) not alone", off)
		}
	}

	f := NewField(10, 10)
	f.SetOccupied(7, 5)
	f.SetOccupied(5, 3)
	p := Walker{X: 5, Y: 5}
	if !p.Alone(f) {
		t.Fatal("cells two steps away must not count as neighbours")
	}
}

func TestAloneBoundaryExclusion(t *testing.T) {
	const w, h = 10, 10
	cases := []struct {
		name     string
		x, y     int
		nx, ny   int
		expected bool
	}{
		{"left edge", 0, 5, 1, 5, true},
		{"right edge", w - 1, 5, w - 2, 5, true},
		{"top edge", 5, 0, 5, 1, true},
		{"bottom edge", 5, h - 1, 5, h - 2, true},
		{"corner", 0, 0, 1, 1, true},
		{"one inside left", 1, 5, 2, 5, true},
		{"one inside top", 5, 1, 5, 2, true},
		{"one inside right", w - 2, 5, w - 3, 5, false},
		{"one inside bottom", 5, h - 2, 5, h - 3, false},
		{"two inside left", 2, 5, 3, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewField(w, h)
			f.SetOccupied(tc.nx, tc.ny)
			p := Walker{X: tc.x, Y: tc.y}
			if got := p.Alone(f); got != tc.expected {
				t.Fatalf("Alone() at (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBorderWalkerNeverFreezes(t *testing.T) {
	f := NewField(10, 10)
	f.SetOccupied(1, 5)
	p := Walker{X: 0, Y: 5}
	rng := &scriptedRand{vals: []int{1}} // dx = dy = 0
	for i := 0; i < 5; i++ {
		if p.Step(f, rng) {
			t.Fatal("walker on the border froze")
		}
	}
	if p.Stuck || p.X != 0 || p.Y != 5 {
		t.Fatalf("walker state changed: %+v", p)
	}
	if f.Occupied(0, 5) {
		t.Fatal("border cell became occupied")
	}
}

func TestStepOutOfBoundsRespawns(t *testing.T) {
	f := NewField(10, 10)
	f.SetOccupied(3, 4)
	p := Walker{X: 0, Y: 0}
	// dx = -1, dy = 0, then respawn draws (3,4) which is occupied, then (6,7).
	rng := &scriptedRand{vals: []int{0, 1, 3, 4, 6, 7}}
	if p.Step(f, rng) {
		t.Fatal("leaving the grid must not freeze the walker")
	}
	if p.X != 6 || p.Y != 7 {
		t.Fatalf("expected respawn at (6,7), got (%d,%d)", p.X, p.Y)
	}
	if rng.calls != 6 {
		t.Fatalf("expected 6 draws, got %d", rng.calls)
	}
}

func TestResetRespectsOccupancy(t *testing.T) {
	const w, h = 100, 100
	f := NewField(w, h)
	rng := rand.New(rand.NewPCG(11, 0))
	free := map[int]bool{}
	for len(free) < w*h/100 {
		free[rng.IntN(w*h)] = true
	}
	for idx := 0; idx < w*h; idx++ {
		if !free[idx] {
			f.SetOccupied(idx%w, idx/w)
		}
	}

	var p Walker
	for i := 0; i < 2000; i++ {
		p.Reset(f, rng)
		if f.Occupied(p.X, p.Y) {
			t.Fatalf("Reset placed walker on occupied cell (%d,%d)", p.X, p.Y)
		}
		if !free[p.Y*w+p.X] {
			t.Fatalf("Reset placed walker outside the free set at (%d,%d)", p.X, p.Y)
		}
	}
}

func TestStuckWalkerIgnoresStep(t *testing.T) {
	f := NewField(10, 10)
	f.SetOccupied(4, 4)
	p := Walker{X: 4, Y: 4, Stuck: true}
	rng := &scriptedRand{vals: []int{2}}
	if p.Step(f, rng) {
		t.Fatal("stuck walker reported a new freeze")
	}
	if rng.calls != 0 {
		t.Fatalf("stuck walker consumed %d draws", rng.calls)
	}
	if p.X != 4 || p.Y != 4 {
		t.Fatalf("stuck walker moved to (%d,%d)", p.X, p.Y)
	}
}

func TestResetPanicsOnFullField(t *testing.T) {
	f := NewField(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			f.SetOccupied(x, y)
		}
	}
	if !f.Full() {
		t.Fatal("field with every cell set should be full")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Reset on a full field should panic")
		}
	}()
	var p Walker
	p.Reset(f, &scriptedRand{vals: []int{0}})
}
