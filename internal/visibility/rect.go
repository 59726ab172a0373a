// Package visibility computes how much of a region is inside a viewport and
// watches regions for threshold crossings as the viewport moves.
package visibility

// Rect is an axis-aligned rectangle in page coordinates. Units are whatever
// the caller lays out in: pixels, terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Area returns W*H, or 0 for degenerate rectangles.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o. The result has zero area when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// VisibleFraction returns the share of region's area that lies inside view,
// in [0, 1]. A region without area is never visible.
func VisibleFraction(region, view Rect) float64 {
	total := region.Area()
	if total == 0 {
		return 0
	}
	return float64(region.Intersect(view).Area()) / float64(total)
}
