package render

import "github.com/lixenwraith/vi-pong/core"

// Viewport maps logical field coordinates onto terminal cells
type Viewport struct {
	FieldWidth, FieldHeight int
	Cols, Rows              int
}

// CellX returns the column holding logical x
func (v Viewport) CellX(x int) int {
	if v.FieldWidth <= 0 {
		return 0
	}
	return x * v.Cols / v.FieldWidth
}

// CellY returns the row holding logical y
func (v Viewport) CellY(y int) int {
	if v.FieldHeight <= 0 {
		return 0
	}
	return y * v.Rows / v.FieldHeight
}

// Cells converts a logical rectangle to a cell rectangle at least one cell in each dimension
func (v Viewport) Cells(a core.Area) core.Area {
	x0, y0 := v.CellX(a.X), v.CellY(a.Y)
	x1, y1 := ceilDiv(a.Right()*v.Cols, v.FieldWidth), ceilDiv(a.Bottom()*v.Rows, v.FieldHeight)
	return core.Area{X: x0, Y: y0, Width: max(x1-x0, 1), Height: max(y1-y0, 1)}
}

func ceilDiv(n, d int) int {
	if d <= 0 {
		return 0
	}
	if n <= 0 {
		return n / d
	}
	return (n + d - 1) / d
}
