package recognizer

import "github.com/lucasb-eyer/go-colorful"

// The palette assigns each shape family a fixed neon-style color. Colors are
// built in HSV so the whole table shares one saturation/value profile and only
// the hue varies by family. The recognizer treats these as opaque presentation
// hints; drawing surfaces use them for the match overlay.
var (
	colorLine     = colorful.Hsv(187, 0.75, 0.96) // cyan
	colorTriangle = colorful.Hsv(291, 0.60, 0.92) // violet
	colorQuad     = colorful.Hsv(45, 0.80, 0.98)  // amber
	colorPolygon  = colorful.Hsv(122, 0.62, 0.90) // green
	colorCircle   = colorful.Hsv(207, 0.72, 0.98) // azure
	colorOval     = colorful.Hsv(259, 0.52, 0.95) // lavender
	colorStar     = colorful.Hsv(14, 0.85, 0.99)  // coral
)

// colorFor returns the palette color of a shape type's family.
func colorFor(t ShapeType) colorful.Color {
	switch t {
	case ShapeLine:
		return colorLine
	case ShapeTriangle, ShapeEquilateralTriangle, ShapeIsoscelesTriangle, ShapeRightTriangle:
		return colorTriangle
	case ShapeSquare, ShapeRectangle, ShapeDiamond, ShapeQuadrilateral:
		return colorQuad
	case ShapePentagon, ShapeHexagon, ShapeHeptagon, ShapeOctagon, ShapeNonagon, ShapeDecagon, ShapePolygon:
		return colorPolygon
	case ShapeCircle:
		return colorCircle
	case ShapeOval:
		return colorOval
	case ShapeStar:
		return colorStar
	default:
		return colorful.Color{R: 1, G: 1, B: 1}
	}
}

// ColorHex returns the palette color of a shape type as "#rrggbb".
func ColorHex(t ShapeType) string {
	return colorFor(t).Hex()
}

// PaletteEntry pairs a shape family label with its presentation color.
type PaletteEntry struct {
	Family string `json:"family"`
	Color  string `json:"color"`
}

// Palette returns the fixed family-to-color table in a stable order.
func Palette() []PaletteEntry {
	return []PaletteEntry{
		{Family: "LINE", Color: colorLine.Hex()},
		{Family: "TRIANGLE", Color: colorTriangle.Hex()},
		{Family: "QUADRILATERAL", Color: colorQuad.Hex()},
		{Family: "POLYGON", Color: colorPolygon.Hex()},
		{Family: "CIRCLE", Color: colorCircle.Hex()},
		{Family: "OVAL", Color: colorOval.Hex()},
		{Family: "STAR", Color: colorStar.Hex()},
	}
}
