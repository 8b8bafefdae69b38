package tools

import (
	"context"
	"encoding/json"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

func termListSchema(kind string) *protocol.JSONSchema {
	page, perPage := pagingProps()
	return &protocol.JSONSchema{
		Type: "object",
		Properties: map[string]protocol.JSONSchema{
			"page":     page,
			"per_page": perPage,
			"search":   {Type: "string", Description: "Search term for " + kind + " names"},
			"orderby": {
				Type:        "string",
				Enum:        []string{"name", "slug", "count", "id"},
				Description: "Sort field",
			},
			"order": {
				Type:        "string",
				Enum:        orderValues,
				Description: "Sort direction",
			},
			"hide_empty": {Type: "boolean", Description: "Exclude " + kind + " with no assigned content"},
		},
	}
}

type termListArgs struct {
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
	Search    string `json:"search"`
	OrderBy   string `json:"orderby"`
	Order     string `json:"order"`
	HideEmpty *bool  `json:"hide_empty"`
}

func (a termListArgs) query() wordpress.TermListQuery {
	return wordpress.TermListQuery{
		Page:      a.Page,
		PerPage:   a.PerPage,
		Search:    a.Search,
		OrderBy:   a.OrderBy,
		Order:     a.Order,
		HideEmpty: a.HideEmpty,
	}
}

// listCategoriesTool lists categories.
type listCategoriesTool struct {
	client *wordpress.Client
}

// ListCategories constructs the category listing tool.
func ListCategories(client *wordpress.Client) *listCategoriesTool {
	return &listCategoriesTool{client: client}
}

func (t *listCategoriesTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "list_categories",
		Description: "List categories with optional search and ordering.",
		InputSchema: termListSchema("categories"),
	}
}

func (t *listCategoriesTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args termListArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.ListCategories(ctx, args.query())
}

// listTagsTool lists tags.
type listTagsTool struct {
	client *wordpress.Client
}

// ListTags constructs the tag listing tool.
func ListTags(client *wordpress.Client) *listTagsTool {
	return &listTagsTool{client: client}
}

func (t *listTagsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "list_tags",
		Description: "List tags with optional search and ordering.",
		InputSchema: termListSchema("tags"),
	}
}

func (t *listTagsTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args termListArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.ListTags(ctx, args.query())
}
