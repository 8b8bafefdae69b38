package tools

import (
	"context"
	"encoding/json"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

// listPostsTool lists posts with optional filters.
type listPostsTool struct {
	client *wordpress.Client
}

// ListPosts constructs the post listing tool.
func ListPosts(client *wordpress.Client) *listPostsTool {
	return &listPostsTool{client: client}
}

func (t *listPostsTool) Descriptor() protocol.ToolDescriptor {
	page, perPage := pagingProps()
	return protocol.ToolDescriptor{
		Name:        "list_posts",
		Description: "List posts with optional search, status, taxonomy, and ordering filters.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"page":     page,
				"per_page": perPage,
				"search":   {Type: "string", Description: "Full-text search term"},
				"status": {
					Type:        "string",
					Enum:        postStatuses,
					Description: "Post status filter (default publish)",
				},
				"categories": idArrayProp("Category IDs to filter by"),
				"tags":       idArrayProp("Tag IDs to filter by"),
				"orderby": {
					Type:        "string",
					Enum:        []string{"date", "title", "modified", "id"},
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

type listPostsArgs struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Search     string `json:"search"`
	Status     string `json:"status"`
	Categories []int  `json:"categories"`
	Tags       []int  `json:"tags"`
	OrderBy    string `json:"orderby"`
	Order      string `json:"order"`
}

func (t *listPostsTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args listPostsArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.ListPosts(ctx, wordpress.PostListQuery{
		Page:       args.Page,
		PerPage:    args.PerPage,
		Search:     args.Search,
		Status:     args.Status,
		Categories: args.Categories,
		Tags:       args.Tags,
		OrderBy:    args.OrderBy,
		Order:      args.Order,
	})
}

// getPostTool fetches one post by id.
type getPostTool struct {
	client *wordpress.Client
}

// GetPost constructs the post fetch tool.
func GetPost(client *wordpress.Client) *getPostTool {
	return &getPostTool{client: client}
}

func (t *getPostTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_post",
		Description: "Fetch a single post by ID.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id": {Type: "integer", Description: "Post ID"},
			},
			Required: []string{"id"},
		},
	}
}

type idArgs struct {
	ID int `json:"id"`
}

func (t *getPostTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args idArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.GetPost(ctx, args.ID)
}

// createPostTool creates a post.
type createPostTool struct {
	client *wordpress.Client
}

// CreatePost constructs the post creation tool.
func CreatePost(client *wordpress.Client) *createPostTool {
	return &createPostTool{client: client}
}

func (t *createPostTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "create_post",
		Description: "Create a new post. Defaults to draft status unless told otherwise.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"title":   {Type: "string", Description: "Post title (required)"},
				"content": {Type: "string", Description: "Post content (HTML)"},
				"excerpt": {Type: "string", Description: "Post excerpt"},
				"status": {
					Type:        "string",
					Enum:        postStatuses,
					Description: "Post status (default draft)",
				},
				"categories": idArrayProp("Category IDs to assign"),
				"tags":       idArrayProp("Tag IDs to assign"),
			},
			Required: []string{"title"},
		},
	}
}

type createPostArgs struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	Status     string `json:"status"`
	Categories []int  `json:"categories"`
	Tags       []int  `json:"tags"`
}

func (t *createPostTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args createPostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.CreatePost(ctx, wordpress.PostDraft{
		Title:      args.Title,
		Content:    args.Content,
		Excerpt:    args.Excerpt,
		Status:     args.Status,
		Categories: args.Categories,
		Tags:       args.Tags,
	})
}

// updatePostTool applies a partial update to a post.
type updatePostTool struct {
	client *wordpress.Client
}

// UpdatePost constructs the post update tool.
func UpdatePost(client *wordpress.Client) *updatePostTool {
	return &updatePostTool{client: client}
}

func (t *updatePostTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "update_post",
		Description: "Update fields of an existing post. Only supplied fields change.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id":      {Type: "integer", Description: "Post ID"},
				"title":   {Type: "string", Description: "New title"},
				"content": {Type: "string", Description: "New content (HTML)"},
				"excerpt": {Type: "string", Description: "New excerpt"},
				"status": {
					Type:        "string",
					Enum:        postStatuses,
					Description: "New status",
				},
				"categories": idArrayProp("Replacement category IDs"),
				"tags":       idArrayProp("Replacement tag IDs"),
			},
			Required: []string{"id"},
		},
	}
}

// Pointer fields distinguish "absent" from an explicit empty value.
type updatePostArgs struct {
	ID         int     `json:"id"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Excerpt    *string `json:"excerpt"`
	Status     *string `json:"status"`
	Categories *[]int  `json:"categories"`
	Tags       *[]int  `json:"tags"`
}

func (t *updatePostTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args updatePostArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.UpdatePost(ctx, args.ID, wordpress.PostPatch{
		Title:      args.Title,
		Content:    args.Content,
		Excerpt:    args.Excerpt,
		Status:     args.Status,
		Categories: args.Categories,
		Tags:       args.Tags,
	})
}

// deletePostTool trashes or permanently deletes a post.
type deletePostTool struct {
	client *wordpress.Client
}

// DeletePost constructs the post deletion tool.
func DeletePost(client *wordpress.Client) *deletePostTool {
	return &deletePostTool{client: client}
}

func (t *deletePostTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "delete_post",
		Description: "Delete a post. Moves to trash unless force is true.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id":    {Type: "integer", Description: "Post ID"},
				"force": {Type: "boolean", Description: "Permanently delete instead of trashing (default false)"},
			},
			Required: []string{"id"},
		},
	}
}

type deleteArgs struct {
	ID    int  `json:"id"`
	Force bool `json:"force"`
}

func (t *deletePostTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args deleteArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.DeletePost(ctx, args.ID, args.Force)
}

// publishPostTool flips a post to publish status.
type publishPostTool struct {
	client *wordpress.Client
}

// PublishPost constructs the post publish tool.
func PublishPost(client *wordpress.Client) *publishPostTool {
	return &publishPostTool{client: client}
}

func (t *publishPostTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "publish_post",
		Description: "Publish an existing post. Equivalent to updating only its status.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id": {Type: "integer", Description: "Post ID"},
			},
			Required: []string{"id"},
		},
	}
}

func (t *publishPostTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args idArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.PublishPost(ctx, args.ID)
}
