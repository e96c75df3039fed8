// Package render produces PNG previews of strokes and recognized shapes.
//
// A preview is a dark canvas with the raw stroke drawn as a thin polyline and,
// when a recognition result is supplied, the canonical shape overlaid in its
// palette color with a translucent fill and a soft glow. Previews exist so an
// MCP client can visually confirm what the recognizer saw without rebuilding
// the rendering itself.
//
// # Canvas
//
// The canvas is sized from the stroke's bounding box plus a fixed margin, and
// stroke coordinates are translated so the drawing sits inside it. An optional
// scale factor resizes the final image with Lanczos resampling.
//
// # Encoding
//
// Results carry the image as base64-encoded PNG together with its dimensions
// and MIME type, the wire shape every image-returning tool uses.
package render
