package tools

import (
	"context"
	"encoding/json"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

// listMediaTool lists media library items.
type listMediaTool struct {
	client *wordpress.Client
}

// ListMedia constructs the media listing tool.
func ListMedia(client *wordpress.Client) *listMediaTool {
	return &listMediaTool{client: client}
}

func (t *listMediaTool) Descriptor() protocol.ToolDescriptor {
	page, perPage := pagingProps()
	return protocol.ToolDescriptor{
		Name:        "list_media",
		Description: "List media library items with optional search and type filters.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"page":     page,
				"per_page": perPage,
				"search":   {Type: "string", Description: "Search term"},
				"media_type": {
					Type:        "string",
					Enum:        []string{"image", "video", "audio", "application"},
					Description: "Media type filter",
				},
				"mime_type": {Type: "string", Description: "MIME type filter, e.g. image/png"},
			},
		},
	}
}

type listMediaArgs struct {
	Page      int    `json:"page"`
	PerPage   int    `json:"per_page"`
	Search    string `json:"search"`
	MediaType string `json:"media_type"`
	MimeType  string `json:"mime_type"`
}

func (t *listMediaTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args listMediaArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.ListMedia(ctx, wordpress.MediaListQuery{
		Page:      args.Page,
		PerPage:   args.PerPage,
		Search:    args.Search,
		MediaType: args.MediaType,
		MimeType:  args.MimeType,
	})
}

// getMediaTool fetches one media item by id.
type getMediaTool struct {
	client *wordpress.Client
}

// GetMedia constructs the media fetch tool.
func GetMedia(client *wordpress.Client) *getMediaTool {
	return &getMediaTool{client: client}
}

func (t *getMediaTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_media",
		Description: "Fetch a single media item by ID.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id": {Type: "integer", Description: "Media ID"},
			},
			Required: []string{"id"},
		},
	}
}

func (t *getMediaTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args idArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.GetMedia(ctx, args.ID)
}

// uploadMediaTool uploads a file to the media library.
type uploadMediaTool struct {
	client *wordpress.Client
}

// UploadMedia constructs the media upload tool.
func UploadMedia(client *wordpress.Client) *uploadMediaTool {
	return &uploadMediaTool{client: client}
}

func (t *uploadMediaTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "upload_media",
		Description: "Upload a file to the media library. Content must be base64-encoded; optional metadata is applied after the upload.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"filename":    {Type: "string", Description: "File name including extension (required)"},
				"data":        {Type: "string", Description: "Base64-encoded file content (required)"},
				"title":       {Type: "string", Description: "Media title"},
				"alt_text":    {Type: "string", Description: "Alternative text"},
				"caption":     {Type: "string", Description: "Caption"},
				"description": {Type: "string", Description: "Description"},
			},
			Required: []string{"filename", "data"},
		},
	}
}

type uploadMediaArgs struct {
	Filename    string `json:"filename"`
	Data        string `json:"data"`
	Title       string `json:"title"`
	AltText     string `json:"alt_text"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

func (t *uploadMediaTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args uploadMediaArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return t.client.UploadMedia(ctx, wordpress.MediaUpload{
		Filename:    args.Filename,
		Data:        args.Data,
		Title:       args.Title,
		AltText:     args.AltText,
		Caption:     args.Caption,
		Description: args.Description,
	})
}

// deleteMediaTool permanently deletes a media item.
type deleteMediaTool struct {
	client *wordpress.Client
}

// DeleteMedia constructs the media deletion tool.
func DeleteMedia(client *wordpress.Client) *deleteMediaTool {
	return &deleteMediaTool{client: client}
}

func (t *deleteMediaTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "delete_media",
		Description: "Delete a media item. Media has no trash state, so deletion is always permanent.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"id":    {Type: "integer", Description: "Media ID"},
				"force": {Type: "boolean", Description: "Accepted for symmetry; deletion is permanent regardless"},
			},
			Required: []string{"id"},
		},
	}
}

func (t *deleteMediaTool) Invoke(ctx context.Context, raw json.RawMessage) (any, error) {
	var args deleteArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	// force is ignored on purpose; the adapter always sends force=true.
	return t.client.DeleteMedia(ctx, args.ID)
}
