package core

import (
	"errors"
	"testing"
)

func TestRegistryNew(t *testing.T) {
	Register("test-blank", func(cfg map[string]string) (Sim, error) { return nil, nil })
	defer delete(sims, "test-blank")

	if _, err := New("test-blank", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := New("does-not-exist", nil); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("expected ErrUnknownSim, got %v", err)
	}
}

func TestPointIndexRowMajor(t *testing.T) {
	cases := []struct {
		p    Point
		w    int
		want int
	}{
		{Point{0, 0}, 7, 0},
		{Point{6, 0}, 7, 6},
		{Point{0, 1}, 7, 7},
		{Point{3, 4}, 7, 31},
	}
	for _, tc := range cases {
		if got := tc.p.Index(tc.w); got != tc.want {
			t.Fatalf("%+v.Index(%d) = %d, want %d", tc.p, tc.w, got, tc.want)
		}
	}
}
