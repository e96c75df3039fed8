package geometry

import (
	"math"
	"sort"
)

// OrderByAngle returns the given vertices sorted by the angle of the vector
// from their common centroid to each vertex (atan2, ascending). This produces
// a consistent traversal order around the outline regardless of the order the
// vertices were drawn or clicked in, which is required before side, angle, or
// area computations mean anything.
//
// The sort is stable: vertices with equal angles (including the degenerate
// all-coincident case, where every angle is atan2(0, 0)) keep their input
// order, so the result is a deterministic permutation of the input. The input
// slice is not modified. Returns an empty slice for empty input.
func OrderByAngle(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	c := Centroid(points)
	ordered := append([]Point(nil), points...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ai := math.Atan2(ordered[i].Y-c.Y, ordered[i].X-c.X)
		aj := math.Atan2(ordered[j].Y-c.Y, ordered[j].X-c.X)
		return ai < aj
	})
	return ordered
}
