// Package tools implements the fortune MCP tool handlers.
//
// Each tool is a struct that receives its dependencies through its
// constructor, exposes Definition() for registration and Handle() for
// mcp-go's CallToolRequest signature. User mistakes come back as tool
// errors (IsError), never as Go errors.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// intArg extracts an integer argument from a tool request. ok is false if
// the key is missing, not a number, or not a whole number (JSON numbers
// are float64).
func intArg(req mcp.CallToolRequest, key string) (n int, ok bool) {
	v, isNum := req.GetArguments()[key].(float64)
	if !isNum || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}

// jsonResult marshals v as an indented JSON text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// formatArg reads the optional "format" argument, restricted to allowed.
// The first allowed value is the default.
func formatArg(req mcp.CallToolRequest, allowed ...string) (string, bool) {
	f := req.GetString("format", "")
	if f == "" {
		return allowed[0], true
	}
	for _, a := range allowed {
		if f == a {
			return f, true
		}
	}
	return "", false
}
