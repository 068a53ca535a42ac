package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/image-shift/internal/imaging"
	"github.com/ironsheep/image-shift/internal/shifter"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_shift").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// toolContent is one item of a tool result. Results are always a single
// text item holding the indented JSON of the Go result value.
type toolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolCallResult struct {
	Content []toolContent `json:"content"`
}

type toolFunc func(s *Server, args json.RawMessage) (interface{}, error)

var tools = map[string]toolFunc{
	"image_load":          (*Server).toolImageLoad,
	"image_dimensions":    (*Server).toolImageDimensions,
	"image_shift":         (*Server).toolImageShift,
	"image_shift_preview": (*Server).toolImageShiftPreview,
}

// callTool runs a tools/call request. Malformed params are reported as
// invalid params; unknown tools and tool failures as a tool error whose data
// is the Go error string.
func (s *Server) callTool(params json.RawMessage) (interface{}, *RPCError) {
	var p ToolCallParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, &RPCError{Code: codeInvalidParams, Message: "Invalid params", Data: err.Error()}
	}

	fn, ok := tools[p.Name]
	if !ok {
		return nil, &RPCError{Code: codeToolFailed, Message: "Tool execution failed", Data: "unknown tool: " + p.Name}
	}

	result, err := fn(s, p.Arguments)
	if err != nil {
		return nil, &RPCError{Code: codeToolFailed, Message: "Tool execution failed", Data: err.Error()}
	}

	text, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, &RPCError{Code: codeToolFailed, Message: "Tool execution failed", Data: fmt.Sprintf("failed to encode result: %v", err)}
	}
	return toolCallResult{Content: []toolContent{{Type: "text", Text: string(text)}}}, nil
}

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) toolImageLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) toolImageDimensions(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// shiftArgs are the arguments of image_shift. Shift is a pointer so an
// explicit 0 can be told apart from a missing argument.
type shiftArgs struct {
	Path  string `json:"path"`
	Shift *int   `json:"shift"`
}

type shiftPreviewArgs struct {
	shiftArgs
	Scale float64 `json:"scale"`
}

var errMissingShift = errors.New("missing required argument: shift")

func (s *Server) toolImageShift(args json.RawMessage) (interface{}, error) {
	var a shiftArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Shift == nil {
		return nil, errMissingShift
	}

	res, err := shifter.ShiftUpAndBackup(a.Path, *a.Shift)

	// The backup may have been replaced even when the overwrite failed.
	s.cache.Evict(a.Path)
	s.cache.Evict(shifter.BackupPath(a.Path))

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Server) toolImageShiftPreview(args json.RawMessage) (interface{}, error) {
	var a shiftPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Shift == nil {
		return nil, errMissingShift
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, _, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ShiftPreview(img, *a.Shift, a.Scale)
}
