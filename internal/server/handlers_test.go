package server

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/strokekit/stroke-tools-mcp/internal/render"
)

// createStrokeFile writes a stroke JSON file and returns its path
func createStrokeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stroke.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write stroke file: %v", err)
	}
	return path
}

func mustArgs(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}
	return b
}

const squareJSON = `[{"x":0,"y":0},{"x":100,"y":0},{"x":100,"y":100},{"x":0,"y":100}]`

func TestExecuteTool_StrokeLoad(t *testing.T) {
	s := New()
	path := createStrokeFile(t, squareJSON)

	result, err := s.executeTool("stroke_load", mustArgs(t, map[string]interface{}{"path": path}))
	if err != nil {
		t.Fatalf("stroke_load failed: %v", err)
	}

	loaded, ok := result.(*StrokeLoadResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if loaded.Path != path {
		t.Errorf("Path: got %s, want %s", loaded.Path, path)
	}
	if loaded.PointCount != 4 {
		t.Errorf("PointCount: got %d, want 4", loaded.PointCount)
	}
	if loaded.Perimeter != 400 {
		t.Errorf("Perimeter: got %f, want 400", loaded.Perimeter)
	}
}

func TestExecuteTool_StrokeLoad_MissingPath(t *testing.T) {
	s := New()
	if _, err := s.executeTool("stroke_load", mustArgs(t, map[string]interface{}{})); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestExecuteTool_StrokeInfo_InlinePoints(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":` + squareJSON + `}`)

	result, err := s.executeTool("stroke_info", args)
	if err != nil {
		t.Fatalf("stroke_info failed: %v", err)
	}

	// The result round-trips through the MCP content wrapper as JSON.
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	if decoded["point_count"] != float64(4) {
		t.Errorf("point_count: got %v, want 4", decoded["point_count"])
	}
}

func TestExecuteTool_ShapeRecognize(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":` + squareJSON + `}`)

	result, err := s.executeTool("shape_recognize", args)
	if err != nil {
		t.Fatalf("shape_recognize failed: %v", err)
	}

	recognized, ok := result.(*RecognizeResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if !recognized.Recognized {
		t.Fatal("expected the square to be recognized")
	}
	if recognized.Shape.Label != "SQUARE" {
		t.Errorf("Label: got %s, want SQUARE", recognized.Shape.Label)
	}
	if recognized.Shape.Confidence <= 0 || recognized.Shape.Confidence > 99 {
		t.Errorf("Confidence out of range: %d", recognized.Shape.Confidence)
	}
}

func TestExecuteTool_ShapeRecognize_TooFewPoints(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":[{"x":5,"y":5}]}`)

	result, err := s.executeTool("shape_recognize", args)
	if err != nil {
		t.Fatalf("shape_recognize failed: %v", err)
	}

	recognized := result.(*RecognizeResult)
	if recognized.Recognized || recognized.Shape != nil {
		t.Errorf("expected no recognition, got %+v", recognized)
	}
}

func TestExecuteTool_PathSimplify(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":[{"x":0,"y":0},{"x":50,"y":1},{"x":100,"y":0}],"tolerance":5}`)

	result, err := s.executeTool("path_simplify", args)
	if err != nil {
		t.Fatalf("path_simplify failed: %v", err)
	}

	simplified, ok := result.(*SimplifyResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if simplified.OriginalCount != 3 {
		t.Errorf("OriginalCount: got %d, want 3", simplified.OriginalCount)
	}
	if simplified.SimplifiedCount != 2 {
		t.Errorf("SimplifiedCount: got %d, want 2", simplified.SimplifiedCount)
	}
	if simplified.Tolerance != 5 {
		t.Errorf("Tolerance: got %f, want 5", simplified.Tolerance)
	}
}

func TestExecuteTool_PathSimplify_AdaptiveTolerance(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":` + squareJSON + `}`)

	result, err := s.executeTool("path_simplify", args)
	if err != nil {
		t.Fatalf("path_simplify failed: %v", err)
	}

	simplified := result.(*SimplifyResult)

	// Square perimeter 400: adaptive tolerance is 4% of it.
	if simplified.Tolerance != 16 {
		t.Errorf("Tolerance: got %f, want 16", simplified.Tolerance)
	}
}

func TestExecuteTool_PathSimplify_NegativeTolerance(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":` + squareJSON + `,"tolerance":-1}`)

	if _, err := s.executeTool("path_simplify", args); err == nil {
		t.Error("expected error for negative tolerance")
	}
}

func TestExecuteTool_ConvexHull(t *testing.T) {
	s := New()

	// Square corners plus an interior point that must not survive.
	args := json.RawMessage(`{"points":[{"x":0,"y":0},{"x":100,"y":0},{"x":50,"y":50},{"x":100,"y":100},{"x":0,"y":100}]}`)

	result, err := s.executeTool("convex_hull", args)
	if err != nil {
		t.Fatalf("convex_hull failed: %v", err)
	}

	hull, ok := result.(*HullResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if len(hull.Points) != 4 {
		t.Errorf("hull size: got %d, want 4", len(hull.Points))
	}
	if hull.Area != 10000 {
		t.Errorf("Area: got %f, want 10000", hull.Area)
	}
	if hull.Perimeter != 400 {
		t.Errorf("Perimeter: got %f, want 400", hull.Perimeter)
	}
}

func TestExecuteTool_ShapePalette(t *testing.T) {
	s := New()

	result, err := s.executeTool("shape_palette", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("shape_palette failed: %v", err)
	}

	palette, ok := result.(*PaletteResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if len(palette.Palette) != 7 {
		t.Errorf("palette size: got %d, want 7", len(palette.Palette))
	}
}

func TestExecuteTool_ShapePreview(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":` + squareJSON + `}`)

	result, err := s.executeTool("shape_preview", args)
	if err != nil {
		t.Fatalf("shape_preview failed: %v", err)
	}

	preview, ok := result.(*render.PreviewResult)
	if !ok {
		t.Fatalf("unexpected result type %T", result)
	}
	if preview.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", preview.MimeType)
	}
	if preview.ImageBase64 == "" {
		t.Error("ImageBase64 is empty")
	}
}

func TestExecuteTool_ShapePreview_WithoutOverlay(t *testing.T) {
	s := New()
	args := json.RawMessage(`{"points":` + squareJSON + `,"include_shape":false,"scale":2}`)

	result, err := s.executeTool("shape_preview", args)
	if err != nil {
		t.Fatalf("shape_preview failed: %v", err)
	}
	if result.(*render.PreviewResult).Width != 328 {
		t.Errorf("Width: got %d, want 328", result.(*render.PreviewResult).Width)
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := New()
	if _, err := s.executeTool("does_not_exist", json.RawMessage(`{}`)); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestExecuteTool_NoStrokeGiven(t *testing.T) {
	s := New()
	if _, err := s.executeTool("shape_recognize", json.RawMessage(`{}`)); err == nil {
		t.Error("expected error when neither points nor path is given")
	}
}

func TestHandleToolsCall_RoundTrip(t *testing.T) {
	s := New()
	path := createStrokeFile(t, squareJSON)

	params := map[string]interface{}{
		"name": "shape_recognize",
		"arguments": map[string]interface{}{
			"path": path,
		},
	}
	paramsJSON, _ := json.Marshal(params)

	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("unexpected content: %v", result["content"])
	}
	text, _ := content[0]["text"].(string)
	if text == "" {
		t.Fatal("content text is empty")
	}

	var recognized RecognizeResult
	if err := json.Unmarshal([]byte(text), &recognized); err != nil {
		t.Fatalf("content text is not JSON: %v", err)
	}
	if !recognized.Recognized {
		t.Error("expected recognized=true in content")
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := New()

	params := map[string]interface{}{
		"name": "stroke_load",
		"arguments": map[string]interface{}{
			"path": "/nonexistent/stroke.json",
		},
	}
	paramsJSON, _ := json.Marshal(params)

	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  paramsJSON,
	}

	resp := s.handleToolsCall(req)

	if resp.Error == nil {
		t.Fatal("expected error for non-existent file")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`not json`),
	}

	resp := s.handleToolsCall(req)

	if resp.Error == nil {
		t.Fatal("expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}
