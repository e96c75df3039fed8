package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointsProperty is the shared schema fragment for an inline point array.
func pointsProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x": map[string]interface{}{"type": "number"},
				"y": map[string]interface{}{"type": "number"},
			},
			"required": []string{"x", "y"},
		},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Stroke Input
		{
			Name:        "stroke_load",
			Description: "Load a stroke file (JSON array of {x, y} points) and return its metadata: point count, path length, bounding box and whether the path is approximately closed. Caches the stroke for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the stroke file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "stroke_info",
			Description: "Get metadata for a stroke given inline or from a previously loaded file: point count, path length, perimeter, bounding box, endpoint gap and closure.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a stroke file",
					},
					"points": pointsProperty("Inline stroke points; takes precedence over path"),
				},
			},
		},

		// Recognition
		{
			Name:        "shape_recognize",
			Description: "Classify a freehand stroke or explicit vertex list as a geometric shape (line, triangle, quadrilateral, regular polygon, circle, oval, star). Returns the shape type, a 0-99 confidence score, canonical vertices, a human-readable description and a display color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a stroke file",
					},
					"points": pointsProperty("Inline stroke points; takes precedence over path"),
				},
			},
		},

		// Geometry Operations
		{
			Name:        "path_simplify",
			Description: "Reduce a stroke to its significant corner points using Ramer-Douglas-Peucker simplification. With no tolerance given, uses the recognizer's adaptive tolerance (4% of the perimeter, at least 8px).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a stroke file",
					},
					"points": pointsProperty("Inline stroke points; takes precedence over path"),
					"tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Maximum deviation in pixels a removed point may have from the simplified path. Default: adaptive",
					},
				},
			},
		},
		{
			Name:        "convex_hull",
			Description: "Compute the convex hull of a stroke. Returns the hull vertices in counter-clockwise order together with the hull's area and perimeter.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a stroke file",
					},
					"points": pointsProperty("Inline stroke points; takes precedence over path"),
				},
			},
		},

		// Presentation
		{
			Name:        "shape_palette",
			Description: "Return the display color palette: one hex color per shape family (line, triangle, quadrilateral, polygon, circle, oval, star).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "shape_preview",
			Description: "Render a stroke, and optionally its recognized shape overlay, to a base64-encoded PNG preview.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to a stroke file",
					},
					"points": pointsProperty("Inline stroke points; takes precedence over path"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Scale factor for the output image (0-8]. Default 1.0",
						"default":     1.0,
					},
					"include_shape": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to overlay the recognition result. Default true",
						"default":     true,
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
