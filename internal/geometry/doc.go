// Package geometry provides the 2D primitives underlying stroke shape recognition.
//
// This package implements the pure geometric functions the recognizer is built
// from: distances, centroids, perimeters, vertex angles, polygon areas, bounding
// boxes, Ramer-Douglas-Peucker polyline simplification, angular vertex ordering,
// and monotone-chain convex hulls. All functions are stateless, allocate only
// their return values, and never mutate their inputs.
//
// # Coordinate System
//
// Points use float64 coordinates in the input device's units (pixels for
// interactive drawing surfaces):
//   - Origin (0, 0) at top-left
//   - X increases rightward
//   - Y increases downward
//
// # Polygon Conventions
//
// Perimeter and PolygonArea treat their input as a closed polygon (the last
// vertex connects back to the first). PolygonArea is only meaningful when the
// vertices are in traversal order; use OrderByAngle first for vertex sets whose
// order is not known to follow the outline.
//
// # Degenerate Input
//
// Ambiguous or tiny input is a normal outcome for the recognizer and handled by
// its thresholds, but genuinely malformed input is a caller bug: Centroid panics
// on an empty slice rather than returning NaN coordinates.
//
// # Complexity
//
// All functions are O(n) except OrderByAngle and ConvexHull (O(n log n) sorts)
// and Simplify (O(n^2) worst case on pathological inputs where every point is a
// local maximum; interactive strokes are tens to low hundreds of points).
package geometry
