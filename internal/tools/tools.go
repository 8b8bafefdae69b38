// Package tools defines the MCP tool catalogue: one struct per operation,
// each pairing a typed parameter schema with an Invoke that validates its
// argument bag and delegates to the WordPress adapter.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
)

// postStatuses are the status values accepted across post and page tools.
var postStatuses = []string{"publish", "draft", "pending", "private"}

var orderValues = []string{"asc", "desc"}

func decodeArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid arguments: %v", err)
	}
	return nil
}

func f(v float64) *float64 { return &v }

// pagingProps returns the page/per_page schema shared by list tools.
func pagingProps() (protocol.JSONSchema, protocol.JSONSchema) {
	page := protocol.JSONSchema{
		Type:        "integer",
		Minimum:     f(1),
		Description: "Page number (default 1)",
	}
	perPage := protocol.JSONSchema{
		Type:        "integer",
		Minimum:     f(1),
		Maximum:     f(100),
		Description: "Items per page, 1-100 (default 10)",
	}
	return page, perPage
}

func idArrayProp(desc string) protocol.JSONSchema {
	return protocol.JSONSchema{
		Type:        "array",
		Items:       &protocol.JSONSchema{Type: "integer"},
		Description: desc,
	}
}
