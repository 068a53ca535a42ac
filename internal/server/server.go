package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-shift/internal/imaging"
)

const protocolVersion = "2024-11-05"

// JSON-RPC error codes used by the server.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// maxRequestSize bounds a single request line. Requests carry paths and
// integers only, so this is generous.
const maxRequestSize = 1024 * 1024

// Request is one JSON-RPC 2.0 message read from the client. A request
// without an id is a notification and never gets a response.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (r *Request) isNotification() bool {
	return len(r.ID) == 0
}

// Response is one JSON-RPC 2.0 reply. Exactly one of Result and Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error member of a Response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

type methodFunc func(s *Server, params json.RawMessage) (interface{}, *RPCError)

var methods = map[string]methodFunc{
	"initialize":                (*Server).initialize,
	"notifications/initialized": func(*Server, json.RawMessage) (interface{}, *RPCError) { return nil, nil },
	"ping":                      func(*Server, json.RawMessage) (interface{}, *RPCError) { return struct{}{}, nil },
	"tools/list":                (*Server).listTools,
	"tools/call":                (*Server).callTool,
}

// Server answers MCP requests for the shift tools. Decoded images are cached
// per path between calls; a shift evicts what it rewrites.
type Server struct {
	cache *imaging.ImageCache
}

// New creates a server with an empty image cache.
func New() *Server {
	return &Server{
		cache: imaging.NewImageCache(),
	}
}

// Run serves requests from stdin until it is closed, replying on stdout.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads newline-delimited requests from r until EOF and writes one
// response line per non-notification request to w. Malformed lines are
// answered with a parse error and do not stop the loop; a failed write does.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		resp := s.dispatch(line)
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

// dispatch decodes one request line and runs its method.
func (s *Server) dispatch(line []byte) *Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		log.Printf("Failed to parse request: %v", err)
		return errorResponse(nil, codeParseError, "Parse error", err.Error())
	}

	fn, ok := methods[req.Method]
	if !ok {
		if req.isNotification() {
			return nil
		}
		return errorResponse(req.ID, codeMethodNotFound, "Method not found: "+req.Method, "")
	}

	result, rpcErr := fn(s, req.Params)
	if req.isNotification() {
		if rpcErr != nil {
			log.Printf("Notification %s failed: %s", req.Method, rpcErr.Message)
		}
		return nil
	}
	if rpcErr != nil {
		return &Response{JSONRPC: "2.0", ID: req.ID, Error: rpcErr}
	}
	return &Response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

func errorResponse(id json.RawMessage, code int, message, data string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message, Data: data},
	}
}

func (s *Server) initialize(json.RawMessage) (interface{}, *RPCError) {
	return map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    "image-shift-mcp",
			"version": "0.1.0",
		},
	}, nil
}
