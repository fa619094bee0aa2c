package core

// Rect is an axis-aligned box in playfield pixels, X/Y is the top-left corner
type Rect struct {
	X, Y int
	W, H int
}

// center2 returns the box center doubled, keeping odd sizes exact in integer math
func (r Rect) center2() (int, int) {
	return 2*r.X + r.W, 2*r.Y + r.H
}

// CenterX returns the horizontal center, truncated
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// CenterY returns the vertical center, truncated
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Overlaps reports whether the center distance is strictly below the sum of
// half extents on both axes; touching edges do not collide
func (r Rect) Overlaps(o Rect) bool {
	ax, ay := r.center2()
	bx, by := o.center2()
	// Both sides doubled: |2dx| < wa + wb
	return abs(ax-bx) < r.W+o.W && abs(ay-by) < r.H+o.H
}

// Below reports whether the box top is past the given line
func (r Rect) Below(y int) bool {
	return r.Y > y
}

// Above reports whether the box top is above the given line
func (r Rect) Above(y int) bool {
	return r.Y < y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
