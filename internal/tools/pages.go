package tools

import (
	"context"
	"encoding/json"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

// listPagesTool lists pages with optional filters.
type listPagesTool struct {
	client *wordpress.Client
}

// ListPages constructs the page listing tool.
func ListPages(client *wordpress.Client) *listPagesTool {
	return &listPagesTool{client: client}
}

func (t *listPagesTool) Descriptor() protocol.ToolDescriptor {
	page, perPage := pagingProps()
	return protocol.ToolDescriptor{
		Name:        "list_pages",
		Description: "List pages with optional search, status, parent, and ordering filters.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"page":     page,
				"per_page": perPage,
				"search":   {Type: "string", Description: "Full-text search term"},
				"status": {
					Type:        "string",
					Enum:        postStatuses,
					Description: "Page status filter (default publish)",
				},
				"parent": {Type: "integer", Description: "Restrict to children of this page ID"},
				"orderby": {
					Type:        "string",
					Enum:        []string{"date", "title", "modified", "menu_order", "id"},
					Description: "Sort field (default date)",
				},
				"order": {
					Type:        "string",
					Enum:        orderValues,
					Description: "Sort direction (default desc)",
				},
			},
		},
	}
}

type listPagesArgs struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Search  string `json:"search"`
	Status  string `json:"status"`
	Parent  int    `json:"parent"`
	OrderBy string `json:"orderby"`
	Order   string `json:"order"`
}

func (t *listPagesTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args listPagesArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.ListPages(ctx, wordpress.PageListQuery{
		Page:    args.Page,
		PerPage: args.PerPage,
		Search:  args.Search,
		Status:  args.Status,
		Parent:  args.Parent,
		OrderBy: args.OrderBy,
		Order:   args.Order,
	})
}

// getPageTool fetches one page by id.
type getPageTool struct {
	client *wordpress.Client
}

// GetPage constructs the page fetch tool.
func GetPage(client *wordpress.Client) *getPageTool {
	return &getPageTool{client: client}
}

func (t *getPageTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_page",
		Description: "Fetch a single page by ID.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id": {Type: "integer", Description: "Page ID"},
			},
			Required: []string{"id"},
		},
	}
}

func (t *getPageTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args idArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.GetPage(ctx, args.ID)
}

// createPageTool creates a page.
type createPageTool struct {
	client *wordpress.Client
}

// CreatePage constructs the page creation tool.
func CreatePage(client *wordpress.Client) *createPageTool {
	return &createPageTool{client: client}
}

func (t *createPageTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "create_page",
		Description: "Create a new page. Defaults to draft status unless told otherwise.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"title":   {Type: "string", Description: "Page title (required)"},
				"content": {Type: "string", Description: "Page content (HTML)"},
				"excerpt": {Type: "string", Description: "Page excerpt"},
				"status": {
					Type:        "string",
					Enum:        postStatuses,
					Description: "Page status (default draft)",
				},
				"parent":     {Type: "integer", Description: "Parent page ID"},
				"menu_order": {Type: "integer", Description: "Position in menu ordering"},
			},
			Required: []string{"title"},
		},
	}
}

type createPageArgs struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	Status    string `json:"status"`
	Parent    int    `json:"parent"`
	MenuOrder int    `json:"menu_order"`
}

func (t *createPageTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args createPageArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.CreatePage(ctx, wordpress.PageDraft{
		Title:     args.Title,
		Content:   args.Content,
		Excerpt:   args.Excerpt,
		Status:    args.Status,
		Parent:    args.Parent,
		MenuOrder: args.MenuOrder,
	})
}

// updatePageTool applies a partial update to a page.
type updatePageTool struct {
	client *wordpress.Client
}

// UpdatePage constructs the page update tool.
func UpdatePage(client *wordpress.Client) *updatePageTool {
	return &updatePageTool{client: client}
}

func (t *updatePageTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "update_page",
		Description: "Update fields of an existing page. Only supplied fields change.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id":      {Type: "integer", Description: "Page ID"},
				"title":   {Type: "string", Description: "New title"},
				"content": {Type: "string", Description: "New content (HTML)"},
				"excerpt": {Type: "string", Description: "New excerpt"},
				"status": {
					Type:        "string",
					Enum:        postStatuses,
					Description: "New status",
				},
				"parent":     {Type: "integer", Description: "New parent page ID"},
				"menu_order": {Type: "integer", Description: "New menu position"},
			},
			Required: []string{"id"},
		},
	}
}

type updatePageArgs struct {
	ID        int     `json:"id"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Status    *string `json:"status"`
	Parent    *int    `json:"parent"`
	MenuOrder *int    `json:"menu_order"`
}

func (t *updatePageTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args updatePageArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.UpdatePage(ctx, args.ID, wordpress.PagePatch{
		Title:     args.Title,
		Content:   args.Content,
		Excerpt:   args.Excerpt,
		Status:    args.Status,
		Parent:    args.Parent,
		MenuOrder: args.MenuOrder,
	})
}

// deletePageTool trashes or permanently deletes a page.
type deletePageTool struct {
	client *wordpress.Client
}

// DeletePage constructs the page deletion tool.
func DeletePage(client *wordpress.Client) *deletePageTool {
	return &deletePageTool{client: client}
}

func (t *deletePageTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "delete_page",
		Description: "Delete a page. Moves to trash unless force is true.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id":    {Type: "integer", Description: "Page ID"},
				"force": {Type: "boolean", Description: "Permanently delete instead of trashing (default false)"},
			},
			Required: []string{"id"},
		},
	}
}

func (t *deletePageTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args deleteArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.DeletePage(ctx, args.ID, args.Force)
}

// publishPageTool flips a page to publish status.
type publishPageTool struct {
	client *wordpress.Client
}

// PublishPage constructs the page publish tool.
func PublishPage(client *wordpress.Client) *publishPageTool {
	return &publishPageTool{client: client}
}

func (t *publishPageTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "publish_page",
		Description: "Publish an existing page. Equivalent to updating only its status.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id": {Type: "integer", Description: "Page ID"},
			},
			Required: []string{"id"},
		},
	}
}

func (t *publishPageTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args idArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.PublishPage(ctx, args.ID)
}
