package server

import "encoding/json"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func shiftProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Pixels to move the content up. Negative values move it down. Values at or beyond the image height leave a fully transparent image.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, alpha support and whether it can be shifted in place.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Shift Operations
		{
			Name:        "image_shift",
			Description: "Shift the image content vertically in place, padding exposed rows with transparency. The original file is first copied to <path>.bak, replacing any earlier backup.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty(),
					"shift": shiftProperty(),
				},
				"required": []string{"path", "shift"},
			},
		},
		{
			Name:        "image_shift_preview",
			Description: "Render the result of a vertical shift as base64-encoded PNG without modifying any file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  pathProperty(),
					"shift": shiftProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the preview. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "shift"},
			},
		},
	}
}

func (s *Server) listTools(json.RawMessage) (interface{}, *RPCError) {
	return map[string]interface{}{
		"tools": GetToolDefinitions(),
	}, nil
}
