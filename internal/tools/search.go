package tools

import (
	"context"
	"encoding/json"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

// searchTool runs cross-type content search.
type searchTool struct {
	client *wordpress.Client
}

// Search constructs the cross-type search tool.
func Search(client *wordpress.Client) *searchTool {
	return &searchTool{client: client}
}

func (t *searchTool) Descriptor() protocol.ToolDescriptor {
	page, perPage := pagingProps()
	return protocol.ToolDescriptor{
		Name:        "search",
		Description: "Search across posts, pages, and other content types.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"term": {Type: "string", Description: "Search term (required)"},
				"type": {
					Type:        "string",
					Enum:        []string{"post", "term", "post-format"},
					Description: "Object type to search",
				},
				"subtype": {Type: "string", Description: "Object subtype, e.g. post or page"},
				"page":     page,
				"per_page": perPage,
			},
			Required: []string{"term"},
		},
	}
}

type searchArgs struct {
	Term    string `json:"term"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

func (t *searchTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args searchArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.Search(ctx, wordpress.SearchQuery{
		Term:    args.Term,
		Type:    args.Type,
		Subtype: args.Subtype,
		Page:    args.Page,
		PerPage: args.PerPage,
	})
}
