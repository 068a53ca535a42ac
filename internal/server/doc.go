// Package server implements the MCP (Model Context Protocol) server that
// exposes image shifting to MCP clients.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Shift Operations:
//   - image_shift: Shift content vertically in place, keeping <path>.bak
//   - image_shift_preview: Render a shift as base64 PNG without writing files
//
// # Image Caching
//
// Decoded images are cached by path for image_load, image_dimensions and
// image_shift_preview. image_shift rewrites the file and its backup, so both
// paths are evicted after every shift attempt.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, which names the failed phase
//     (unsupported format, decode, backup or encode)
//
// A line that is not valid JSON is answered with a -32700 parse error and a
// null id. Notifications (requests without an id) are never answered, even
// for unknown methods.
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
