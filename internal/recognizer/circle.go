package recognizer

import (
	"math"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
)

// Circle/oval detection thresholds. Pixel units; see package doc.
const (
	circleMinPoints = 10   // minimum raw samples for a meaningful closed curve
	circleMinRadius = 12   // average radius below this is a noisy tap, not a circle
	curveScoreFloor = 0.18 // winning score below this: no match

	// Hard circularity gates. A square traces at ~0.785 and a hexagon at
	// ~0.907, so the circle gate sits above the hexagon and the ramp rewards
	// only genuinely round outlines. The oval gate admits ellipses down to
	// roughly 2.5:1 while rejecting rectangles (~0.70 at 2:1).
	circleMinCircularity = 0.91
	ovalMinCircularity   = 0.75

	ovalMinAspect = 1.2 // below this the outline is not clearly elongated
)

// curveMatch holds the measurements of a matched closed curve.
type curveMatch struct {
	shape       ShapeType // ShapeCircle or ShapeOval
	score       float64   // winning classifier score in [0,1]
	center      geometry.Point
	radius      float64 // mean distance from center to the raw samples
	circularity float64
	aspect      float64 // bounding box long side / short side, >= 1
}

// detectCircleOval checks a dense freehand path for a circle or oval.
//
// The path must have at least circleMinPoints samples and be approximately
// closed (endpoint gap under max(18, 8% of perimeter)). The outline is lightly
// simplified and angularly ordered before measuring circularity so that
// sample density does not skew the perimeter. Two independent linear scores
// are computed - one for circle, one for oval - and the higher one wins if it
// clears the score floor; ties favor the circle.
//
// Returns nil when neither score qualifies.
func detectCircleOval(points []geometry.Point) *curveMatch {
	if len(points) < circleMinPoints {
		return nil
	}

	perimeter := geometry.Perimeter(points)
	gap := geometry.Distance(points[0], points[len(points)-1])
	if gap >= math.Max(18, 0.08*perimeter) {
		return nil
	}

	center := geometry.Centroid(points)
	var radiusSum float64
	for _, p := range points {
		radiusSum += geometry.Distance(center, p)
	}
	radius := radiusSum / float64(len(points))
	if radius < circleMinRadius {
		return nil
	}

	// Mean absolute deviation of sample radii, relative to the mean radius.
	var deviationSum float64
	for _, p := range points {
		deviationSum += math.Abs(geometry.Distance(center, p) - radius)
	}
	radialDeviation := deviationSum / float64(len(points)) / radius

	// Light smoothing before measuring, so circularity reflects the outline
	// rather than the raw sampling density.
	simplified := geometry.Simplify(points, math.Max(2, 0.01*perimeter))
	ordered := geometry.OrderByAngle(simplified)
	area := geometry.PolygonArea(ordered)
	outline := geometry.Perimeter(ordered)
	if outline <= 0 {
		return nil
	}
	circularity := 4 * math.Pi * area / (outline * outline)

	box := geometry.BoundingBox(points)
	long := math.Max(box.Width(), box.Height())
	short := math.Min(box.Width(), box.Height())
	if short <= 0 {
		return nil
	}
	aspect := long / short

	var circleScore float64
	if circularity >= circleMinCircularity {
		circleScore = 0.6*clamp01((circularity-circleMinCircularity)/0.06) +
			0.2*clamp01(1-(aspect-1)/0.3) +
			0.2*clamp01(1-radialDeviation/0.2)
	}

	var ovalScore float64
	if circularity >= ovalMinCircularity && aspect >= ovalMinAspect {
		ovalScore = 0.5*clamp01((circularity-ovalMinCircularity)/0.15) +
			0.5*clamp01((aspect-ovalMinAspect)/1.0)
	}

	match := &curveMatch{
		center:      center,
		radius:      radius,
		circularity: circularity,
		aspect:      aspect,
	}
	switch {
	case circleScore >= ovalScore && circleScore >= curveScoreFloor:
		match.shape = ShapeCircle
		match.score = circleScore
	case ovalScore > circleScore && ovalScore >= curveScoreFloor:
		match.shape = ShapeOval
		match.score = ovalScore
	default:
		return nil
	}
	return match
}
