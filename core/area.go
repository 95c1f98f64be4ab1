package core

// Area is an axis-aligned rectangle in logical field units
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Right returns the x-coordinate one past the right edge
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the y-coordinate one past the bottom edge
func (a Area) Bottom() int {
	return a.Y + a.Height
}

// CenterY returns the vertical center, rounded toward the top
func (a Area) CenterY() int {
	return a.Y + a.Height/2
}

// Overlaps reports whether two areas share interior space
// Touching edges do not count as overlap
func (a Area) Overlaps(b Area) bool {
	if a.Width <= 0 || a.Height <= 0 || b.Width <= 0 || b.Height <= 0 {
		return false
	}
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}
