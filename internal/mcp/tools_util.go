// tools_util.go extracts typed parameters from MCP's generic argument map.
//
// Optional parameters fall back to a default when missing or of the wrong
// type; LLM clients often omit them or send "true" for true.

package mcp

import (
	"encoding/json"

	"github.com/jpl-au/booksearch/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

func args(req mcp.CallToolRequest) map[string]any {
	m, _ := req.Params.Arguments.(map[string]any)
	return m
}

// getString returns a string parameter or def.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool returns a boolean parameter or def.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	if v, ok := args(req)[name].(bool); ok {
		return v
	}
	return def
}

// getStrings returns a string array parameter, skipping non-string
// elements. Nil when absent.
func getStrings(req mcp.CallToolRequest, name string) []string {
	arr, ok := args(req)[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// getJSON returns a parameter as raw JSON. A string is taken to already be
// JSON text; any other value (an array sent inline) is re-encoded. The bool
// is false when the parameter is absent.
func getJSON(req mcp.CallToolRequest, name string) ([]byte, bool) {
	v, ok := args(req)[name]
	if !ok {
		return nil, false
	}
	if s, ok := v.(string); ok {
		return []byte(s), true
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, true
	}
	return data, true
}

// jsonResult serialises v as indented JSON in a text result. Marshal
// failures become error results so every failure reaches the client the
// same way.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := store.MarshalJSON(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
