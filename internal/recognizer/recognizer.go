package recognizer

import (
	"fmt"
	"math"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
)

// Pipeline thresholds.
const (
	// explicitVertexLimit separates explicit-vertex mode from freehand mode.
	// Up to this many points, the input is treated as deliberately placed
	// vertices and never simplified.
	explicitVertexLimit = 6

	// Freehand simplification tolerance floor and perimeter fraction.
	freehandToleranceMin  = 8
	freehandToleranceFrac = 0.04

	// A simplified freehand path whose endpoints are within this fraction of
	// the perimeter of each other is treated as closed.
	closedPathFrac = 0.10
)

// Recognize classifies an ordered point sequence into a named shape.
//
// The sequence must be in capture order: chronological for freehand traces,
// placement order for explicitly clicked vertices. Coordinates are pixels;
// the thresholds are calibrated for pixel units and are not unit-agnostic.
//
// Dispatch is by raw point count:
//   - fewer than 2 points: nil
//   - 2 to 6 points: explicit-vertex mode, no simplification
//   - more than 6 points: freehand mode - circle/oval first, then star, then
//     adaptive simplification and polygon classification
//
// Curve detectors run before the polygon fallback because the coarse polygon
// tolerance would collapse a traced circle or star into a low-vertex polygon
// before the curve detectors ever saw it.
//
// Exactly one shape (or nil) is returned per call. The call is pure: no
// mutation of the input, no hidden state, deterministic output.
func Recognize(points []geometry.Point) *RecognizedShape {
	if len(points) < 2 {
		return nil
	}

	if len(points) <= explicitVertexLimit {
		return classifyVertices(points)
	}

	if m := detectCircleOval(points); m != nil {
		return curveShape(m)
	}

	if m := detectStar(points); m != nil {
		confidence := scaleConfidence(60, 39, m.score)
		return newShape(ShapeStar, confidence, len(m.vertices),
			fmt.Sprintf("%d-pointed, concavity %.2f", len(m.vertices)/2, m.ratio),
			m.vertices)
	}

	perimeter := geometry.Perimeter(points)
	simplified := geometry.Simplify(points, FreehandTolerance(points))

	// A closed trace retains a final vertex back at the start; drop it so the
	// vertex count reflects the polygon's true corners.
	if len(simplified) >= 3 &&
		geometry.Distance(simplified[0], simplified[len(simplified)-1]) < closedPathFrac*perimeter {
		simplified = simplified[:len(simplified)-1]
	}

	return classifyVertices(simplified)
}

// FreehandTolerance returns the adaptive simplification tolerance Recognize
// applies to freehand traces: 4% of the closed perimeter with an 8px floor.
func FreehandTolerance(points []geometry.Point) float64 {
	return math.Max(freehandToleranceMin, freehandToleranceFrac*geometry.Perimeter(points))
}

// curveShape builds the result for a circle or oval match. Circles and ovals
// report a single centroid point and a vertex count of zero.
func curveShape(m *curveMatch) *RecognizedShape {
	var confidence int
	var description string
	switch m.shape {
	case ShapeOval:
		confidence = scaleConfidence(55, 44, m.score)
		description = fmt.Sprintf("aspect %.1f:1, radius %.0fpx", m.aspect, m.radius)
	default:
		confidence = scaleConfidence(60, 39, m.score)
		description = fmt.Sprintf("radius %.0fpx, circularity %.2f", m.radius, m.circularity)
	}
	return newShape(m.shape, confidence, 0, description, []geometry.Point{m.center})
}
