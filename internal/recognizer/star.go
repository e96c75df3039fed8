package recognizer

import (
	"math"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
)

// Star detection thresholds.
const (
	starMinRawPoints = 20 // a traced star outline is always sample-dense
	starMinVertices  = 8  // fewest simplified vertices of a 4-pointed star

	// Concavity ramp: the area/hull-area ratio maps linearly to a score,
	// from 0 at starConvexRatio down to 1 at starConcaveRatio.
	starConvexRatio  = 0.92
	starConcaveRatio = 0.62

	starScoreFloor = 0.28
)

// starMatch holds the outline of a matched concave polygon.
type starMatch struct {
	score    float64
	ratio    float64          // polygon area / convex hull area
	vertices []geometry.Point // angularly ordered simplified outline
}

// detectStar checks a dense freehand path for a star-like concave outline.
//
// The path is simplified aggressively (tolerance max(5, 1.5% of perimeter)),
// a near-duplicate closing vertex is dropped, and the remaining vertices are
// angularly ordered. The concavity ratio - polygon area over convex hull
// area - is 1.0 for convex outlines and falls as the outline grows spikes;
// the score ramps linearly over the [starConcaveRatio, starConvexRatio]
// interval. Returns nil below the score floor.
func detectStar(points []geometry.Point) *starMatch {
	if len(points) < starMinRawPoints {
		return nil
	}

	perimeter := geometry.Perimeter(points)
	tolerance := math.Max(5, 0.015*perimeter)
	simplified := geometry.Simplify(points, tolerance)

	// A closed trace ends where it began; drop the duplicated closing vertex.
	if len(simplified) >= 2 && geometry.Distance(simplified[0], simplified[len(simplified)-1]) < tolerance {
		simplified = simplified[:len(simplified)-1]
	}
	if len(simplified) < starMinVertices {
		return nil
	}

	ordered := geometry.OrderByAngle(simplified)
	area := geometry.PolygonArea(ordered)
	hullArea := geometry.PolygonArea(geometry.ConvexHull(ordered))
	if hullArea <= 0 {
		return nil
	}

	ratio := area / hullArea
	score := clamp01((starConvexRatio - ratio) / (starConvexRatio - starConcaveRatio))
	if score < starScoreFloor {
		return nil
	}

	return &starMatch{score: score, ratio: ratio, vertices: ordered}
}
