// Package server implements the MCP (Model Context Protocol) server for floor plan tools.
//
// This package provides a JSON-RPC 2.0 server that exposes rectilinear boundary
// analysis through the MCP protocol: point containment and largest-rectangle
// searches over floor plans given as ordered lists of corner points.
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
// Every tool takes the floor plan either as "path" (a file with one "x,y"
// corner per line) or as "data" (the same text inline).
//
// Floor Plan Information:
//   - floor_load: Load a plan and describe it
//
// Containment:
//   - floor_contains: Classify one cell as inside or outside
//   - floor_contains_multi: Classify many cells
//   - floor_cross_check: Compare the parity and flood fill classifiers
//
// Rectangle Search:
//   - floor_largest_area: Largest rectangle between candidate corners
//   - floor_largest_area_constrained: Largest rectangle that stays inside the plan
//
// Visualisation:
//   - floor_render: Draw the plan, optionally highlighting a rectangle
//
// # Plan Caching
//
// Plans loaded by path are cached for the lifetime of the server process and
// reused across tool calls, avoiding re-reading and rebuilding the boundary.
// Inline plans are built per call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A search that finds no valid rectangle is not an error; its result has
// "found": false.
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
