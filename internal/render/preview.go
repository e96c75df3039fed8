package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
	"github.com/strokekit/stroke-tools-mcp/internal/recognizer"
)

const (
	// canvasMargin is the padding between the stroke's bounding box and the
	// canvas edge, in pixels.
	canvasMargin = 32

	// minCanvasSize keeps degenerate strokes (single dots, short lines) on a
	// canvas large enough to see.
	minCanvasSize = 64

	// maxScale bounds the resize factor so a misbehaving client cannot
	// request a gigapixel preview.
	maxScale = 8.0

	strokeLineWidth  = 2.0
	overlayLineWidth = 3.5
	glowRadius       = 5.0

	// curveSegments is the polygon resolution used to draw circles and ovals.
	curveSegments = 64
)

// PreviewResult contains a rendered preview image.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview renders a stroke, and optionally its recognition result, to a PNG.
//
// The raw stroke is drawn as a thin polyline. When shape is non-nil the
// canonical shape is overlaid in its palette color with a translucent fill and
// a gaussian glow behind the outline. Scale multiplies the final image size;
// values outside (0, 8] are rejected. Pass scale 1 for no resizing.
func Preview(points []geometry.Point, shape *recognizer.RecognizedShape, scale float64) (*PreviewResult, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("cannot render an empty stroke")
	}
	if scale <= 0 || scale > maxScale {
		return nil, fmt.Errorf("scale must be in (0, %g], got %g", maxScale, scale)
	}

	bounds := geometry.BoundingBox(points)
	width := int(math.Ceil(bounds.Width())) + 2*canvasMargin
	height := int(math.Ceil(bounds.Height())) + 2*canvasMargin
	if width < minCanvasSize {
		width = minCanvasSize
	}
	if height < minCanvasSize {
		height = minCanvasSize
	}

	// Translate stroke coordinates into canvas space.
	offsetX := canvasMargin - bounds.MinX
	offsetY := canvasMargin - bounds.MinY
	translated := make([]geometry.Point, len(points))
	for i, p := range points {
		translated[i] = geometry.Point{X: p.X + offsetX, Y: p.Y + offsetY}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	background := colorful.Hsv(222, 0.35, 0.10)
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if shape != nil {
		if err := drawOverlay(canvas, shape, translated); err != nil {
			return nil, err
		}
	}

	// Raw stroke on top so the input stays inspectable under the overlay.
	strokePolyline(canvas, translated, strokeLineWidth, colorful.Hsv(220, 0.10, 0.80), false)

	var final image.Image = canvas
	if scale != 1 {
		final = imaging.Resize(canvas, int(float64(width)*scale), int(float64(height)*scale), imaging.Lanczos)
		width = final.Bounds().Dx()
		height = final.Bounds().Dy()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// drawOverlay draws the recognized shape's outline in its palette color on a
// separate layer, blurs a copy of that layer for the glow, then composites
// glow and outline onto the canvas.
func drawOverlay(canvas *image.RGBA, shape *recognizer.RecognizedShape, translated []geometry.Point) error {
	base, err := colorful.Hex(shape.Color)
	if err != nil {
		return fmt.Errorf("invalid shape color %q: %w", shape.Color, err)
	}

	outline := overlayOutline(shape, translated)
	if len(outline) < 2 {
		return nil
	}

	layer := image.NewRGBA(canvas.Bounds())
	fillPolygon(layer, outline, withAlpha(base, 0.18))
	strokePolyline(layer, outline, overlayLineWidth, base, true)

	glow := blur.Gaussian(layer, glowRadius)
	draw.Draw(canvas, canvas.Bounds(), glow, image.Point{}, draw.Over)
	draw.Draw(canvas, canvas.Bounds(), layer, image.Point{}, draw.Over)
	return nil
}

// overlayOutline converts a recognition result into canvas-space outline
// vertices. Polygonal shapes carry their canonical vertices directly; circles
// and ovals carry only a centroid, so their outline is reconstructed from the
// translated stroke samples.
func overlayOutline(shape *recognizer.RecognizedShape, translated []geometry.Point) []geometry.Point {
	switch shape.Type {
	case recognizer.ShapeCircle:
		center := geometry.Centroid(translated)
		radius := meanRadius(translated, center)
		return ellipseOutline(center, radius, radius, curveSegments)
	case recognizer.ShapeOval:
		center := geometry.Centroid(translated)
		box := geometry.BoundingBox(translated)
		return ellipseOutline(center, box.Width()/2, box.Height()/2, curveSegments)
	default:
		// Canonical vertices were produced in stroke space; shift them by the
		// same offset the raw samples received.
		if len(shape.Points) == 0 || len(translated) == 0 {
			return nil
		}
		rawCentroid := geometry.Centroid(shape.Points)
		// The translation is uniform, so the centroid delta recovers it.
		delta := geometry.Point{
			X: geometry.Centroid(translated).X - rawCentroid.X,
			Y: geometry.Centroid(translated).Y - rawCentroid.Y,
		}
		if shape.Type == recognizer.ShapeLine {
			// A line's canonical points are its own endpoints, already among
			// the translated samples.
			return []geometry.Point{translated[0], translated[len(translated)-1]}
		}
		outline := make([]geometry.Point, len(shape.Points))
		for i, p := range shape.Points {
			outline[i] = geometry.Point{X: p.X + delta.X, Y: p.Y + delta.Y}
		}
		return outline
	}
}

func meanRadius(points []geometry.Point, center geometry.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += geometry.Distance(p, center)
	}
	return sum / float64(len(points))
}

func ellipseOutline(center geometry.Point, rx, ry float64, segments int) []geometry.Point {
	outline := make([]geometry.Point, segments)
	for i := range outline {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		outline[i] = geometry.Point{
			X: center.X + rx*math.Cos(angle),
			Y: center.Y + ry*math.Sin(angle),
		}
	}
	return outline
}

// fillPolygon rasterizes a filled polygon with the even-odd rule.
func fillPolygon(dst *image.RGBA, pts []geometry.Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// strokePolyline draws each segment as a filled quad of the given width, with
// small disks at the joints to hide corner gaps.
func strokePolyline(dst *image.RGBA, pts []geometry.Point, width float64, c color.Color, closed bool) {
	if len(pts) < 2 {
		return
	}
	segments := len(pts) - 1
	if closed {
		segments = len(pts)
	}
	half := width / 2
	for i := 0; i < segments; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Unit normal to the segment.
		nx, ny := -dy/length*half, dx/length*half
		fillPolygon(dst, []geometry.Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		}, c)
	}
	for _, p := range pts {
		fillPolygon(dst, ellipseOutline(p, half, half, 8), c)
	}
}

func withAlpha(c colorful.Color, alpha float64) color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha * 255)}
}
