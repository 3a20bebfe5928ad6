// Package gamemath holds the geometry and motion helpers shared by every
// entity. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

// Rect is an axis-aligned bounding box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether r and o share a region of positive area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Overlap returns the intersection rectangle of r and o. The second result is
// false when the boxes do not intersect.
func (r Rect) Overlap(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}, true
}

// VerticalRangeIntersects reports whether the [top, bottom] ranges of both
// boxes intersect, ignoring X entirely.
func (r Rect) VerticalRangeIntersects(o Rect) bool {
	return r.Y <= o.Bottom() && o.Y <= r.Bottom()
}

// Expand grows the box by dx on the left and right and dy on top and bottom.
func (r Rect) Expand(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}
