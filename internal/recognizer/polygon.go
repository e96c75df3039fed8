package recognizer

import (
	"fmt"
	"math"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
)

// Polygon classification thresholds.
const (
	lineMinLength   = 20 // shorter two-point gestures are noise
	triangleMinSide = 15
	quadMinSide     = 35

	rightAngleTolerance = 0.2  // rad from pi/2 for the right-triangle override
	rectishTolerance    = 0.35 // rad from pi/2, all four corners
	equilateralRatio    = 0.85 // min/max side ratio
	isoscelesTolerance  = 0.15 // relative difference of the closest side pair
	squareRatio         = 0.8
	diamondRatio        = 0.7

	regularityDevSpan = 0.35 // mean relative side deviation mapping to regularity 0
)

// classifyVertices dispatches an explicit vertex set to the polygon
// classifiers by count. The vertices may arrive in any order; each classifier
// angularly orders them before measuring. Returns nil for no match.
func classifyVertices(points []geometry.Point) *RecognizedShape {
	switch len(points) {
	case 0, 1:
		return nil
	case 2:
		return classifyLine(points)
	case 3:
		return classifyTriangle(points)
	case 4:
		return classifyQuadrilateral(points)
	default:
		return classifyRegularPolygon(points)
	}
}

// classifyLine matches a two-point segment of at least lineMinLength pixels.
// Confidence is fixed: a two-point gesture is unambiguous once long enough.
func classifyLine(points []geometry.Point) *RecognizedShape {
	length := geometry.Distance(points[0], points[1])
	if length < lineMinLength {
		return nil
	}
	return newShape(ShapeLine, 90, 2,
		fmt.Sprintf("length %.0fpx", length),
		append([]geometry.Point(nil), points...))
}

// classifyTriangle grades a three-vertex set into the triangle subtypes.
//
// A near-right angle overrides the side-ratio subtypes regardless of how
// equilateral the sides look, so a right isosceles triangle reports
// RIGHT TRIANGLE.
func classifyTriangle(points []geometry.Point) *RecognizedShape {
	ordered := geometry.OrderByAngle(points)
	sides := sideLengths(ordered)
	shortest, longest := minMax(sides)
	if shortest < triangleMinSide {
		return nil
	}
	ratio := shortest / longest

	angles := interiorAngles(ordered)
	rightDev := math.Inf(1)
	for _, a := range angles {
		rightDev = math.Min(rightDev, math.Abs(a-math.Pi/2))
	}

	description := fmt.Sprintf("sides %.0f/%.0f/%.0f px", sides[0], sides[1], sides[2])

	switch {
	case rightDev < rightAngleTolerance:
		confidence := scaleConfidence(80, 19, 1-rightDev/rightAngleTolerance)
		return newShape(ShapeRightTriangle, confidence, 3, description, ordered)
	case ratio > equilateralRatio:
		confidence := scaleConfidence(85, 15, ratio)
		return newShape(ShapeEquilateralTriangle, confidence, 3, description, ordered)
	}

	// Closest pair of sides, as a relative difference.
	pairDev := math.Inf(1)
	for i := 0; i < 3; i++ {
		a, b := sides[i], sides[(i+1)%3]
		pairDev = math.Min(pairDev, math.Abs(a-b)/math.Max(a, b))
	}
	if pairDev < isoscelesTolerance {
		confidence := scaleConfidence(75, 20, 1-pairDev/isoscelesTolerance)
		return newShape(ShapeIsoscelesTriangle, confidence, 3, description, ordered)
	}

	return newShape(ShapeTriangle, scaleConfidence(65, 20, ratio), 3, description, ordered)
}

// classifyQuadrilateral grades a four-vertex set into the quad subtypes.
// "Rectish" means all four interior angles are within rectishTolerance of 90
// degrees; the square/rectangle split is on side ratio, and non-rectish quads
// with near-equal sides are diamonds.
func classifyQuadrilateral(points []geometry.Point) *RecognizedShape {
	ordered := geometry.OrderByAngle(points)
	sides := sideLengths(ordered)
	shortest, longest := minMax(sides)
	if shortest < quadMinSide {
		return nil
	}
	ratio := shortest / longest

	angles := interiorAngles(ordered)
	maxDev, sumDev := 0.0, 0.0
	for _, a := range angles {
		dev := math.Abs(a - math.Pi/2)
		maxDev = math.Max(maxDev, dev)
		sumDev += dev
	}
	rectish := maxDev <= rectishTolerance
	angleAccuracy := clamp01(1 - (sumDev/4)/rectishTolerance)

	switch {
	case rectish && ratio > squareRatio:
		side := (sides[0] + sides[1] + sides[2] + sides[3]) / 4
		return newShape(ShapeSquare, capConfidence(70+ratio*15+angleAccuracy*14), 4,
			fmt.Sprintf("side %.0fpx", side), ordered)
	case rectish:
		width := (sides[0] + sides[2]) / 2
		height := (sides[1] + sides[3]) / 2
		if width < height {
			width, height = height, width
		}
		return newShape(ShapeRectangle, capConfidence(68+angleAccuracy*20+ratio*10), 4,
			fmt.Sprintf("%.0f x %.0fpx", width, height), ordered)
	case ratio > diamondRatio:
		side := (sides[0] + sides[1] + sides[2] + sides[3]) / 4
		return newShape(ShapeDiamond, scaleConfidence(65, 25, ratio), 4,
			fmt.Sprintf("side %.0fpx", side), ordered)
	default:
		return newShape(ShapeQuadrilateral, capConfidence(55+ratio*20+angleAccuracy*15), 4,
			fmt.Sprintf("sides %.0f-%.0fpx", shortest, longest), ordered)
	}
}

// classifyRegularPolygon grades a vertex set of 5 or more by how uniform its
// side lengths are. Named labels exist for 5 through 10 vertices; larger
// counts get the generic polygon label with a lower confidence band.
func classifyRegularPolygon(points []geometry.Point) *RecognizedShape {
	ordered := geometry.OrderByAngle(points)
	sides := sideLengths(ordered)

	var sum float64
	for _, s := range sides {
		sum += s
	}
	average := sum / float64(len(sides))
	if average <= 0 {
		return nil
	}

	var deviation float64
	for _, s := range sides {
		deviation += math.Abs(s - average)
	}
	meanRelDev := deviation / float64(len(sides)) / average
	regularity := clamp01(1 - meanRelDev/regularityDevSpan)

	n := len(ordered)
	shapeType := regularPolygonType(n)
	var confidence int
	if n <= 10 {
		confidence = scaleConfidence(62, 30, regularity)
	} else {
		confidence = scaleConfidence(50, 20, regularity)
	}

	return newShape(shapeType, confidence, n,
		fmt.Sprintf("%d sides, regularity %.0f%%", n, regularity*100), ordered)
}

// sideLengths returns the edge lengths of the closed polygon through the
// ordered vertices.
func sideLengths(ordered []geometry.Point) []float64 {
	sides := make([]float64, len(ordered))
	for i := range ordered {
		sides[i] = geometry.Distance(ordered[i], ordered[(i+1)%len(ordered)])
	}
	return sides
}

// interiorAngles returns the unsigned vertex angle at each ordered vertex.
func interiorAngles(ordered []geometry.Point) []float64 {
	n := len(ordered)
	angles := make([]float64, n)
	for i := range ordered {
		prev := ordered[(i+n-1)%n]
		next := ordered[(i+1)%n]
		angles[i] = geometry.AngleAt(prev, ordered[i], next)
	}
	return angles
}

// minMax returns the smallest and largest of values.
func minMax(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}
