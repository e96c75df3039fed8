package geometry

// Simplify reduces a dense polyline to a minimal vertex subsequence using the
// Ramer-Douglas-Peucker algorithm.
//
// Every discarded point lies within epsilon of the simplified polyline, and the
// first and last points of the input are always retained. Sequences of length
// 2 or less are returned as-is (copied). The result is a fresh slice; the input
// is never mutated.
//
// The algorithm finds the point of maximum perpendicular distance from the
// chord between the first and last points. If that distance exceeds epsilon it
// recurses on the two halves split at that point and concatenates the results,
// dropping the duplicated split vertex; otherwise the whole span collapses to
// its two endpoints. Ties in the maximum distance resolve to the lowest index,
// so the output is deterministic for a given (input, epsilon).
//
// Worst case O(n^2) when every point is a split point; interactive strokes
// stay far from that bound.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) <= 2 {
		return append([]Point(nil), points...)
	}

	first, last := points[0], points[len(points)-1]
	maxDist := 0.0
	maxIndex := 0
	for i := 1; i < len(points)-1; i++ {
		d := PointToSegmentDistance(points[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIndex = i
		}
	}

	if maxDist <= epsilon {
		return []Point{first, last}
	}

	left := Simplify(points[:maxIndex+1], epsilon)
	right := Simplify(points[maxIndex:], epsilon)

	// The split vertex ends both halves; keep one copy.
	return append(left[:len(left)-1], right...)
}
