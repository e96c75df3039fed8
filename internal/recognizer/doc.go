// Package recognizer classifies freehand-drawn or vertex-placed 2D strokes
// into named geometric shapes.
//
// The single entry point is Recognize, which takes an ordered point sequence
// as captured from the input device and returns the best matching shape with a
// confidence score, a canonical vertex list, and a descriptive metric - or nil
// when nothing matches. Ambiguous or low-quality input is a normal outcome,
// not an error.
//
// # Pipeline
//
// Recognition is a priority pipeline keyed on the raw point count:
//
//  1. Fewer than 2 points: no match.
//  2. 2-6 points (explicit-vertex mode): the points are treated as deliberate
//     vertices and dispatched directly to the polygon classifiers without
//     simplification.
//  3. More than 6 points (freehand mode): the circle/oval detector runs first,
//     then the star detector, and only then does the path get simplified to a
//     coarse polygon and classified by vertex count. Curve-like shapes are
//     checked before simplification because the polygon-level tolerance would
//     collapse them into low-vertex polygons.
//
// # Classifiers
//
//   - Circle/oval: closed-path check, circularity (4*pi*A/P^2), bounding-box
//     aspect ratio, and radial deviation from the mean radius.
//   - Star: aggressive simplification, then the ratio of polygon area to
//     convex hull area as a concavity measure.
//   - Small polygon (2-4 vertices): line, triangle subtypes (equilateral,
//     isosceles, right), quadrilateral subtypes (square, rectangle, diamond).
//   - Regular polygon (5+ vertices): side-length regularity graded against a
//     fixed name table (pentagon through decagon, generic beyond).
//
// # Confidence Scores
//
// Confidence is an integer from 0 to 99; the formulas cap at 99 by
// construction, so a returned shape always has confidence in (0, 99]. The
// blends and thresholds are empirical calibration constants tuned for pixel
// units on interactive drawing surfaces - they are not probability estimates
// and are not unit-agnostic.
//
// # Purity
//
// Recognize is deterministic, performs no I/O, never mutates its input, and
// returns a result owning freshly allocated vertices. Concurrent calls need no
// synchronization.
package recognizer
