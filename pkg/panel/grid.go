package panel

import (
	"fmt"
	"math"

	"github.com/matzehuels/panelize/pkg/errors"
	"github.com/matzehuels/panelize/pkg/svgdoc"
)

// Grid describes how many copies to lay out and how far apart.
type Grid struct {
	Columns   int     // X, copies along the horizontal axis
	Rows      int     // Y, copies along the vertical axis
	XOffsetMM float64 // shift between columns in millimetres
	YOffsetMM float64 // shift between rows in millimetres
}

// Validate checks that the grid has at least one column and one row and
// finite offsets.
func (g Grid) Validate() error {
	if g.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "columns must be at least 1, got %d", g.Columns)
	}
	if g.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "rows must be at least 1, got %d", g.Rows)
	}
	if !finite(g.XOffsetMM) {
		return errors.New(errors.ErrCodeInvalidGrid, "x offset must be finite, got %v", g.XOffsetMM)
	}
	if !finite(g.YOffsetMM) {
		return errors.New(errors.ErrCodeInvalidGrid, "y offset must be finite, got %v", g.YOffsetMM)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Columns * g.Rows
}

// String returns the grid as "XxY".
func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// Cell is one grid position and its translation in view box units.
type Cell struct {
	I      int // column index
	J      int // row index
	XShift float64
	YShift float64
}

// ViewBoxOffsets converts the grid's millimetre offsets into view box units.
func ViewBoxOffsets(g Grid, dims svgdoc.Dimensions) (x, y float64) {
	x = g.XOffsetMM * float64(dims.ViewBox.Width) / dims.WidthMM
	y = g.YOffsetMM * float64(dims.ViewBox.Height) / dims.HeightMM
	return x, y
}

// Cells enumerates every cell of the grid, columns outer and rows inner.
func Cells(g Grid, dims svgdoc.Dimensions) []Cell {
	xoff, yoff := ViewBoxOffsets(g, dims)

	cells := make([]Cell, 0, g.Size())
	for i := 0; i < g.Columns; i++ {
		for j := 0; j < g.Rows; j++ {
			cells = append(cells, Cell{
				I:      i,
				J:      j,
				XShift: float64(i) * xoff,
				YShift: float64(j) * yoff,
			})
		}
	}
	return cells
}
