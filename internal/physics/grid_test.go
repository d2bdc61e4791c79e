package physics

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestGridQuery(t *testing.T) {
	g := NewGrid(100, 100, 10)
	g.Insert(5, 5, 2)
	g.Insert(15, 5, 0)
	g.Insert(55, 55, 1)
	g.Insert(-30, 500, 3) // clamped into the bottom-left cell

	if got := g.Query(8, 8, nil); !slices.Equal(got, []int{0, 2}) {
		t.Errorf("Query near origin = %v, want [0 2]", got)
	}
	if got := g.Query(5, 95, nil); !slices.Equal(got, []int{3}) {
		t.Errorf("Query bottom-left = %v, want [3]", got)
	}
	if got := g.Query(90, 10, []int{7}); !slices.Equal(got, []int{7}) {
		t.Errorf("Query far corner = %v, want only the prefix", got)
	}

	g.Reset(100, 100, 10)
	if got := g.Query(5, 5, nil); len(got) != 0 {
		t.Errorf("Query after Reset = %v", got)
	}
}

// Every overlapping pair must appear among the candidates when the cell size
// covers the largest half-extent sum.
func TestGridFindsOverlaps(t *testing.T) {
	const cell = 20.0
	rapid.Check(t, func(t *rapid.T) {
		type box struct{ x, y, w, h float64 }
		gen := rapid.Custom(func(t *rapid.T) box {
			return box{
				x: rapid.Float64Range(-50, 450).Draw(t, "x"),
				y: rapid.Float64Range(-50, 350).Draw(t, "y"),
				w: rapid.Float64Range(1, cell).Draw(t, "w"),
				h: rapid.Float64Range(1, cell).Draw(t, "h"),
			}
		})
		items := rapid.SliceOfN(gen, 1, 40).Draw(t, "items")
		probe := gen.Draw(t, "probe")

		g := NewGrid(400, 300, cell)
		for i, b := range items {
			g.Insert(b.x, b.y, i)
		}
		found := g.Query(probe.x, probe.y, nil)
		if !slices.IsSorted(found) {
			t.Fatalf("candidates not sorted: %v", found)
		}
		for i, b := range items {
			if BoxesOverlap(probe.x, probe.y, probe.w, probe.h, b.x, b.y, b.w, b.h) && !slices.Contains(found, i) {
				t.Fatalf("overlapping item %d missed; candidates %v", i, found)
			}
		}
	})
}
