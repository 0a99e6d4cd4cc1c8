package rtreedb

import "math"

// Box is an axis-aligned bounding rectangle. The zero value is degenerate
// (a point at the origin) but valid.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// valid reports whether b satisfies MinX <= MaxX and MinY <= MaxY.
func (b Box) valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// combine gives the smallest box containing both a and b.
func combine(a, b Box) Box {
	return Box{
		MinX: math.Min(a.MinX, b.MinX),
		MinY: math.Min(a.MinY, b.MinY),
		MaxX: math.Max(a.MaxX, b.MaxX),
		MaxY: math.Max(a.MaxY, b.MaxY),
	}
}

// area returns the box's area. Degenerate boxes (zero width or height)
// have area zero.
func area(b Box) float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// perimeter returns the sum of the box's four edge lengths.
func perimeter(b Box) float64 {
	return 2 * ((b.MaxX - b.MinX) + (b.MaxY - b.MinY))
}

// enlargement returns how much additional area existing would have to gain
// to also cover additional.
func enlargement(existing, additional Box) float64 {
	return area(combine(existing, additional)) - area(existing)
}

// intersects reports whether a and b overlap, including when they merely
// touch along an edge (closed-interval test).
func intersects(a, b Box) bool {
	return a.MinX <= b.MaxX && a.MaxX >= b.MinX &&
		a.MinY <= b.MaxY && a.MaxY >= b.MinY
}

// overlapArea returns the area of the geometric intersection of a and b,
// or 0 if they are disjoint.
func overlapArea(a, b Box) float64 {
	ix := math.Min(a.MaxX, b.MaxX) - math.Max(a.MinX, b.MinX)
	iy := math.Min(a.MaxY, b.MaxY) - math.Max(a.MinY, b.MinY)
	if ix <= 0 || iy <= 0 {
		return 0
	}
	return ix * iy
}

// containsPoint reports whether (x, y) lies within b, inclusive of its
// boundary.
func containsPoint(b Box, x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// mbrDistance returns the Euclidean distance from (x, y) to the nearest
// point of b. It is 0 when the point lies inside or on the boundary of b.
func mbrDistance(b Box, x, y float64) float64 {
	dx := math.Max(b.MinX-x, math.Max(0, x-b.MaxX))
	dy := math.Max(b.MinY-y, math.Max(0, y-b.MaxY))
	return math.Hypot(dx, dy)
}
