package menu

// Point is a terminal cell position, zero based.
type Point struct {
	X int
	Y int
}

// Rect is a cell rectangle. The zero Rect contains nothing.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
