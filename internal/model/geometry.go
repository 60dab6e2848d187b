package model

// Rect is an integer rectangle in grid cells, rows growing downward.
type Rect struct {
	Row, Col      int
	Height, Width int
}

// Contains reports whether the cell (row, col) lies inside the rectangle.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.Height &&
		col >= r.Col && col < r.Col+r.Width
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	return r.Height * r.Width
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Height <= 0 || r.Width <= 0
}

// Overlaps reports whether two rectangles share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.Row < o.Row+o.Height && o.Row < r.Row+r.Height &&
		r.Col < o.Col+o.Width && o.Col < r.Col+r.Width
}

// Within reports whether r lies entirely inside o.
func (r Rect) Within(o Rect) bool {
	return r.Row >= o.Row && r.Col >= o.Col &&
		r.Row+r.Height <= o.Row+o.Height &&
		r.Col+r.Width <= o.Col+o.Width
}
