package gui

import (
	"math"
	"testing"

	"github.com/strasdat/vviz/pkg/message"
)

func TestMedianAspectOddCount(t *testing.T) {
	if got := medianAspect([]float64{2, 0.5, 1}); got != 1 {
		t.Errorf("median = %g, want 1", got)
	}
}

func TestMedianAspectEvenCount(t *testing.T) {
	// Two panels: the median is the average of both ratios.
	if got := medianAspect([]float64{1, 2}); got != 1.5 {
		t.Errorf("median = %g, want 1.5", got)
	}
}

func TestComputeGridSinglePanelFills(t *testing.T) {
	g := ComputeGrid(800, 600, []float64{4.0 / 3.0})
	if g.Columns != 1 || g.Rows != 1 {
		t.Fatalf("grid = %dx%d, want 1x1", g.Columns, g.Rows)
	}
	if g.CellWidth != 800 || g.CellHeight != 600 {
		t.Errorf("cell = %gx%g, want 800x600", g.CellWidth, g.CellHeight)
	}
}

func TestComputeGridPrefersSquareArrangement(t *testing.T) {
	// Four square panels in a square area: a 2x2 grid gives each cell
	// a quarter of the area, strictly better than 1x4 or 4x1.
	g := ComputeGrid(1000, 1000, []float64{1, 1, 1, 1})
	if g.Columns != 2 || g.Rows != 2 {
		t.Errorf("grid = %dx%d, want 2x2", g.Columns, g.Rows)
	}
	if g.CellWidth != 500 || g.CellHeight != 500 {
		t.Errorf("cell = %gx%g, want 500x500", g.CellWidth, g.CellHeight)
	}
}

func TestComputeGridCellsShareMedianAspect(t *testing.T) {
	ratios := []float64{0.5, 1, 2}
	g := ComputeGrid(1200, 700, ratios)
	if g.CellHeight == 0 {
		t.Fatal("degenerate cell")
	}
	if got := g.CellWidth / g.CellHeight; math.Abs(got-1) > 1e-9 {
		t.Errorf("cell aspect = %g, want median 1", got)
	}
}

func TestComputeGridFitsAvailableArea(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8, 13} {
		ratios := make([]float64, n)
		for i := range ratios {
			ratios[i] = 4.0 / 3.0
		}
		g := ComputeGrid(900, 500, ratios)
		if w := g.CellWidth * float64(g.Columns); w > 900+1e-9 {
			t.Errorf("n=%d: total width %g exceeds 900", n, w)
		}
		if h := g.CellHeight * float64(g.Rows); h > 500+1e-9 {
			t.Errorf("n=%d: total height %g exceeds 500", n, h)
		}
		if g.Columns*g.Rows < n {
			t.Errorf("n=%d: %dx%d grid holds fewer than %d cells", n, g.Columns, g.Rows, n)
		}
	}
}

func TestComputeGridEmpty(t *testing.T) {
	if g := ComputeGrid(800, 600, nil); g != (Grid{}) {
		t.Errorf("empty layout = %+v, want zero grid", g)
	}
}

func TestCellOriginWalksRowMajor(t *testing.T) {
	g := Grid{Columns: 2, Rows: 2, CellWidth: 100, CellHeight: 50}
	x, y := g.CellOrigin(3)
	if x != 100 || y != 50 {
		t.Errorf("origin(3) = (%g, %g), want (100, 50)", x, y)
	}
}

func TestStoreLayoutUsesPanelOrder(t *testing.T) {
	s := NewStore()
	s.Apply(message.AddPanel3D{Label: "a"})
	s.Apply(message.AddPanel3D{Label: "b"})

	g := s.Layout(1280, 480)
	if g.Columns != 2 || g.Rows != 1 {
		t.Errorf("grid = %dx%d, want 2x1", g.Columns, g.Rows)
	}
}
