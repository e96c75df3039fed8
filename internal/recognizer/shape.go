package recognizer

import (
	"fmt"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
)

// ShapeType identifies a recognized shape. The variant set is closed; the
// classification switch in labelFor and colorFor is exhaustive over it.
type ShapeType int

const (
	// ShapeLine is a two-point straight line.
	ShapeLine ShapeType = iota

	// Triangle subtypes. ShapeRightTriangle wins over the side-ratio subtypes
	// whenever a near-right angle is present.
	ShapeTriangle
	ShapeEquilateralTriangle
	ShapeIsoscelesTriangle
	ShapeRightTriangle

	// Quadrilateral subtypes.
	ShapeSquare
	ShapeRectangle
	ShapeDiamond
	ShapeQuadrilateral

	// Regular polygons with named labels (5 through 10 vertices).
	ShapePentagon
	ShapeHexagon
	ShapeHeptagon
	ShapeOctagon
	ShapeNonagon
	ShapeDecagon

	// ShapePolygon is the generic n-gon label for more than 10 vertices.
	ShapePolygon

	// Closed curves. These report a centroid instead of a vertex polygon.
	ShapeCircle
	ShapeOval

	// ShapeStar is a concave outline with alternating outer/inner vertices.
	ShapeStar
)

// RecognizedShape is the result of a recognition call.
//
// Points is the canonical ordered vertex list for rendering the match: the
// angularly ordered polygon vertices, or a single centroid point for circles
// and ovals. It is freshly allocated per call and never aliases the input.
type RecognizedShape struct {
	// Type is the classified shape variant.
	Type ShapeType `json:"-"`

	// Label is the fixed string form of Type (e.g. "SQUARE", "POLYGON(12)").
	Label string `json:"type"`

	// Confidence is the calibrated match score, 1-99. Never 100: every
	// confidence formula caps at 99 by construction.
	Confidence int `json:"confidence"`

	// VertexCount is the classified dimensionality. 0 for circles and ovals,
	// which report a centroid instead of a vertex polygon; otherwise it equals
	// len(Points).
	VertexCount int `json:"vertex_count"`

	// Description is a human-readable derived metric (length, radius,
	// regularity, side lengths).
	Description string `json:"description"`

	// Points is the canonical vertex list. Never empty.
	Points []geometry.Point `json:"points"`

	// Color is the fixed presentation hint for this shape type, as "#RRGGBB".
	// Opaque to the recognition logic.
	Color string `json:"color"`
}

// labelFor returns the fixed label for a shape type. The generic polygon
// label carries its vertex count.
func labelFor(t ShapeType, vertexCount int) string {
	switch t {
	case ShapeLine:
		return "LINE"
	case ShapeTriangle:
		return "TRIANGLE"
	case ShapeEquilateralTriangle:
		return "EQUILATERAL TRIANGLE"
	case ShapeIsoscelesTriangle:
		return "ISOSCELES TRIANGLE"
	case ShapeRightTriangle:
		return "RIGHT TRIANGLE"
	case ShapeSquare:
		return "SQUARE"
	case ShapeRectangle:
		return "RECTANGLE"
	case ShapeDiamond:
		return "DIAMOND"
	case ShapeQuadrilateral:
		return "QUADRILATERAL"
	case ShapePentagon:
		return "PENTAGON"
	case ShapeHexagon:
		return "HEXAGON"
	case ShapeHeptagon:
		return "HEPTAGON"
	case ShapeOctagon:
		return "OCTAGON"
	case ShapeNonagon:
		return "NONAGON"
	case ShapeDecagon:
		return "DECAGON"
	case ShapePolygon:
		return fmt.Sprintf("POLYGON(%d)", vertexCount)
	case ShapeCircle:
		return "CIRCLE"
	case ShapeOval:
		return "OVAL"
	case ShapeStar:
		return "STAR"
	default:
		return "UNKNOWN"
	}
}

// regularPolygonType maps a vertex count of 5 or more to its shape type.
func regularPolygonType(n int) ShapeType {
	switch n {
	case 5:
		return ShapePentagon
	case 6:
		return ShapeHexagon
	case 7:
		return ShapeHeptagon
	case 8:
		return ShapeOctagon
	case 9:
		return ShapeNonagon
	case 10:
		return ShapeDecagon
	default:
		return ShapePolygon
	}
}

// newShape assembles a RecognizedShape, filling the label and color from the
// type. points must already be the canonical, freshly allocated vertex list.
func newShape(t ShapeType, confidence, vertexCount int, description string, points []geometry.Point) *RecognizedShape {
	return &RecognizedShape{
		Type:        t,
		Label:       labelFor(t, vertexCount),
		Confidence:  confidence,
		VertexCount: vertexCount,
		Description: description,
		Points:      points,
		Color:       ColorHex(t),
	}
}

// scaleConfidence maps a classifier score in [0,1] to base+span*score,
// truncated to an integer and capped at 99.
func scaleConfidence(base, span, score float64) int {
	return capConfidence(base + span*score)
}

// capConfidence truncates a confidence value to an integer capped at 99.
// Confidence never reaches 100 by construction.
func capConfidence(v float64) int {
	c := int(v)
	if c > 99 {
		c = 99
	}
	return c
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
