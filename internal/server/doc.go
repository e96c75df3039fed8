// Package server implements the MCP (Model Context Protocol) server for stroke
// recognition tools.
//
// This package provides a JSON-RPC 2.0 server that exposes shape recognition
// and stroke geometry capabilities through the MCP protocol. It's designed to
// work with Claude and other MCP-compatible clients, enabling AI systems to
// interpret freehand drawing input with precision.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Stroke Input:
//   - stroke_load: Load a stroke file and get its metadata
//   - stroke_info: Metadata for an inline or cached stroke
//
// Recognition:
//   - shape_recognize: Classify a stroke as a geometric shape
//
// Geometry Operations:
//   - path_simplify: Ramer-Douglas-Peucker corner extraction
//   - convex_hull: Convex hull with area and perimeter
//
// Presentation:
//   - shape_palette: Display colors per shape family
//   - shape_preview: Rendered PNG of a stroke and its recognized shape
//
// # Stroke Input
//
// Every tool that operates on a stroke accepts the points inline as a JSON
// array, or a path to a stroke file. Files are cached by path and reused
// across tool calls for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
