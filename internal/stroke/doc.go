// Package stroke provides loading and caching of captured point sequences for
// the MCP server.
//
// A stroke is an ordered list of 2D points as captured from an input device -
// chronological for freehand traces, placement order for explicitly clicked
// vertices. Strokes are loaded from JSON files and cached in memory so that
// several tool calls (recognition, simplification, preview) can reuse one
// capture without re-reading disk.
//
// # File Format
//
// A stroke file is a JSON array of point objects:
//
//	[{"x": 10, "y": 20}, {"x": 14.5, "y": 23}, ...]
//
// Coordinates are pixels; the recognizer's thresholds assume pixel units.
//
// # Thread Safety
//
// The Store type is safe for concurrent use. Loaded strokes are immutable;
// callers receive copies and cannot corrupt the cache.
package stroke
