package gui

import (
	"math"
	"sort"
)

// Grid describes how the main display area is partitioned: every panel
// gets one cell of the same size, filled left to right, top to bottom
// in panel insertion order.
type Grid struct {
	Columns    int
	Rows       int
	CellWidth  float64
	CellHeight float64
}

// medianAspect returns the median of the given aspect ratios. For an
// even count it averages the two middle values.
func medianAspect(ratios []float64) float64 {
	sorted := make([]float64, len(ratios))
	copy(sorted, ratios)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// ComputeGrid lays out n panels with the given aspect ratios inside an
// available width and height. All cells share the median aspect ratio;
// the column count is chosen by trying every count from 1 to n and
// keeping the one that maximizes cell area.
func ComputeGrid(width, height float64, ratios []float64) Grid {
	n := len(ratios)
	if n == 0 || width <= 0 || height <= 0 {
		return Grid{}
	}
	aspect := medianAspect(ratios)
	if aspect <= 0 {
		aspect = 1
	}

	best := Grid{}
	bestArea := -1.0
	for cols := 1; cols <= n; cols++ {
		rows := (n + cols - 1) / cols
		cellW := width / float64(cols)
		cellH := cellW / aspect
		if cellH*float64(rows) > height {
			cellH = height / float64(rows)
			cellW = cellH * aspect
		}
		if area := cellW * cellH; area > bestArea {
			bestArea = area
			best = Grid{Columns: cols, Rows: rows, CellWidth: cellW, CellHeight: cellH}
		}
	}
	return best
}

// CellOrigin returns the top-left corner of cell i in the grid, in the
// same units as the grid's cell size.
func (g Grid) CellOrigin(i int) (x, y float64) {
	if g.Columns == 0 {
		return 0, 0
	}
	col := i % g.Columns
	row := i / g.Columns
	return float64(col) * g.CellWidth, float64(row) * g.CellHeight
}

// Layout computes the grid for the store's current panels, in panel
// insertion order.
func (s *Store) Layout(width, height float64) Grid {
	var ratios []float64
	s.panels.Range(func(_ string, p Panel) bool {
		ratios = append(ratios, p.AspectRatio())
		return true
	})
	if len(ratios) == 0 {
		return Grid{}
	}
	g := ComputeGrid(width, height, ratios)
	g.CellWidth = math.Floor(g.CellWidth)
	g.CellHeight = math.Floor(g.CellHeight)
	return g
}
