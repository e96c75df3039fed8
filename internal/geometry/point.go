package geometry

import "math"

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X float64 `json:"x"` // Horizontal position (0 = leftmost)
	Y float64 `json:"y"` // Vertical position (0 = topmost)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the horizontal extent of the box.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the box.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Centroid returns the arithmetic mean of the given points.
//
// Panics if points is empty; the centroid of nothing is undefined and an empty
// slice here is always a caller bug (the recognizer gates on minimum counts
// before computing centroids).
func Centroid(points []Point) Point {
	if len(points) == 0 {
		panic("geometry: Centroid of empty point set")
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}

// Perimeter returns the total edge length of the closed polygon formed by
// points in their given order (the last vertex connects back to the first).
// Returns 0 for fewer than 2 points.
func Perimeter(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	var sum float64
	for i := range points {
		sum += Distance(points[i], points[(i+1)%len(points)])
	}
	return sum
}

// PathLength returns the length of the open polyline through points in order,
// without the closing edge. Returns 0 for fewer than 2 points.
func PathLength(points []Point) float64 {
	var sum float64
	for i := 1; i < len(points); i++ {
		sum += Distance(points[i-1], points[i])
	}
	return sum
}

// AngleAt returns the unsigned angle in radians (0..pi) at vertex b, formed by
// the rays b->a and b->c.
//
// The angle is computed via atan2 of the cross product magnitude and the dot
// product, which stays numerically stable for angles near 0 and pi where an
// acos-based formulation loses precision. Degenerate rays (a == b or c == b)
// yield 0.
func AngleAt(a, b, c Point) float64 {
	ux, uy := a.X-b.X, a.Y-b.Y
	vx, vy := c.X-b.X, c.Y-b.Y
	cross := ux*vy - uy*vx
	dot := ux*vx + uy*vy
	return math.Atan2(math.Abs(cross), dot)
}

// PointToSegmentDistance returns the perpendicular distance from p to the
// infinite line through a and b. When a and b coincide the segment is
// degenerate and the point-to-point distance is returned instead.
func PointToSegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Distance(p, a)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / length
}

// PolygonArea returns the absolute area of the polygon formed by points in
// their given order, via the shoelace formula.
//
// The vertices must be in traversal order (see OrderByAngle); the shoelace sum
// over an arbitrarily ordered vertex set measures a self-intersecting polygon
// and is meaningless. Returns 0 for fewer than 3 points.
func PolygonArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	var sum float64
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// BoundingBox returns the minimal axis-aligned box containing all points.
// Returns a zero Rect for an empty slice.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{MinX: points[0].X, MinY: points[0].Y, MaxX: points[0].X, MaxY: points[0].Y}
	for _, p := range points[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}
