package geometry

import "sort"

// ConvexHull returns the convex hull of the given points in counter-clockwise
// order with no collinear redundant vertices, using the monotone chain method.
//
// Points are sorted by (x, then y), then a lower and an upper chain are built,
// each discarding the middle vertex of any non-left turn (cross product <= 0).
// The chains are concatenated with the duplicated endpoints dropped.
//
// For 3 or fewer input points the input itself (copied) is the hull; it is
// already convex or degenerate. The input slice is never mutated.
//
// The recognizer uses the hull as a concavity detector: a polygon whose area is
// well below its hull's area is star-like.
func ConvexHull(points []Point) []Point {
	if len(points) <= 3 {
		return append([]Point(nil), points...)
	}

	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	// Lower chain, then upper chain.
	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain's last vertex duplicates the other chain's first.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// cross returns the z component of (b-a) x (c-a). Positive for a left turn
// (counter-clockwise in a y-down coordinate system this is a right turn on
// screen; the hull is consistent either way).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
