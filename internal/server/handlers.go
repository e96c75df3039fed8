package server

import (
	"encoding/json"
	"fmt"

	"github.com/strokekit/stroke-tools-mcp/internal/geometry"
	"github.com/strokekit/stroke-tools-mcp/internal/recognizer"
	"github.com/strokekit/stroke-tools-mcp/internal/render"
	"github.com/strokekit/stroke-tools-mcp/internal/stroke"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "shape_recognize", "path_simplify").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Resolves the stroke (inline points or cached file)
//  4. Calls the appropriate stroke/geometry/recognizer/render function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Stroke Input
	case "stroke_load":
		return s.handleStrokeLoad(args)
	case "stroke_info":
		return s.handleStrokeInfo(args)

	// Recognition
	case "shape_recognize":
		return s.handleShapeRecognize(args)

	// Geometry Operations
	case "path_simplify":
		return s.handlePathSimplify(args)
	case "convex_hull":
		return s.handleConvexHull(args)

	// Presentation
	case "shape_palette":
		return s.handleShapePalette(args)
	case "shape_preview":
		return s.handleShapePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// strokeArgs is the argument shape shared by every tool that operates on a
// stroke: inline points, or the path of a (possibly cached) stroke file.
type strokeArgs struct {
	Path   string           `json:"path"`
	Points []geometry.Point `json:"points"`
}

// resolve returns the stroke the arguments refer to. Inline points take
// precedence over a file path.
func (s *Server) resolve(a strokeArgs) ([]geometry.Point, error) {
	if len(a.Points) > 0 {
		return a.Points, nil
	}
	if a.Path == "" {
		return nil, fmt.Errorf("either points or path must be provided")
	}
	return s.store.Load(a.Path)
}

// === Stroke Input Handlers ===

type strokeLoadArgs struct {
	Path string `json:"path"`
}

// StrokeLoadResult is the stroke_load response: file identity plus metadata.
type StrokeLoadResult struct {
	Path string `json:"path"`
	*stroke.Info
}

func (s *Server) handleStrokeLoad(args json.RawMessage) (interface{}, error) {
	var a strokeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	info, err := stroke.LoadInfo(s.store, a.Path)
	if err != nil {
		return nil, err
	}
	return &StrokeLoadResult{Path: a.Path, Info: info}, nil
}

func (s *Server) handleStrokeInfo(args json.RawMessage) (interface{}, error) {
	var a strokeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	points, err := s.resolve(a)
	if err != nil {
		return nil, err
	}
	return stroke.Describe(points), nil
}

// === Recognition Handlers ===

// RecognizeResult is the shape_recognize response. Recognized is false when
// the stroke matched no shape (too few points or degenerate geometry), in
// which case Shape is omitted.
type RecognizeResult struct {
	Recognized bool                        `json:"recognized"`
	Shape      *recognizer.RecognizedShape `json:"shape,omitempty"`
}

func (s *Server) handleShapeRecognize(args json.RawMessage) (interface{}, error) {
	var a strokeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	points, err := s.resolve(a)
	if err != nil {
		return nil, err
	}

	shape := recognizer.Recognize(points)
	return &RecognizeResult{Recognized: shape != nil, Shape: shape}, nil
}

// === Geometry Operation Handlers ===

type pathSimplifyArgs struct {
	strokeArgs
	Tolerance float64 `json:"tolerance"`
}

// SimplifyResult is the path_simplify response.
type SimplifyResult struct {
	Points          []geometry.Point `json:"points"`
	OriginalCount   int              `json:"original_count"`
	SimplifiedCount int              `json:"simplified_count"`
	Tolerance       float64          `json:"tolerance"`
}

func (s *Server) handlePathSimplify(args json.RawMessage) (interface{}, error) {
	var a pathSimplifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance must be non-negative, got %g", a.Tolerance)
	}
	points, err := s.resolve(a.strokeArgs)
	if err != nil {
		return nil, err
	}

	tolerance := a.Tolerance
	if tolerance == 0 {
		tolerance = recognizer.FreehandTolerance(points)
	}
	simplified := geometry.Simplify(points, tolerance)
	return &SimplifyResult{
		Points:          simplified,
		OriginalCount:   len(points),
		SimplifiedCount: len(simplified),
		Tolerance:       tolerance,
	}, nil
}

// HullResult is the convex_hull response.
type HullResult struct {
	Points    []geometry.Point `json:"points"`
	Area      float64          `json:"area"`
	Perimeter float64          `json:"perimeter"`
}

func (s *Server) handleConvexHull(args json.RawMessage) (interface{}, error) {
	var a strokeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	points, err := s.resolve(a)
	if err != nil {
		return nil, err
	}

	hull := geometry.ConvexHull(points)
	return &HullResult{
		Points:    hull,
		Area:      geometry.PolygonArea(hull),
		Perimeter: geometry.Perimeter(hull),
	}, nil
}

// === Presentation Handlers ===

// PaletteResult is the shape_palette response.
type PaletteResult struct {
	Palette []recognizer.PaletteEntry `json:"palette"`
}

func (s *Server) handleShapePalette(args json.RawMessage) (interface{}, error) {
	return &PaletteResult{Palette: recognizer.Palette()}, nil
}

type shapePreviewArgs struct {
	strokeArgs
	Scale        float64 `json:"scale"`
	IncludeShape *bool   `json:"include_shape"`
}

func (s *Server) handleShapePreview(args json.RawMessage) (interface{}, error) {
	var a shapePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	points, err := s.resolve(a.strokeArgs)
	if err != nil {
		return nil, err
	}

	var shape *recognizer.RecognizedShape
	if a.IncludeShape == nil || *a.IncludeShape {
		shape = recognizer.Recognize(points)
	}
	return render.Preview(points, shape, a.Scale)
}
