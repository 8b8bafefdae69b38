package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

type rawMedia struct {
	ID        int           `json:"id"`
	Date      string        `json:"date"`
	Title     renderedField `json:"title"`
	SourceURL string        `json:"source_url"`
	MimeType  string        `json:"mime_type"`
	MediaType string        `json:"media_type"`
	AltText   string        `json:"alt_text"`
}

// Media is the projected media item shape: flattened title and source URL
// rather than the raw nested objects.
type Media struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	SourceURL string `json:"sourceUrl"`
	MimeType  string `json:"mimeType"`
	MediaType string `json:"mediaType"`
	AltText   string `json:"altText,omitempty"`
	Date      string `json:"date,omitempty"`
}

// MediaList pairs a page of media items with its pagination counters.
type MediaList struct {
	Media []Media `json:"media"`
	Pagination
}

func projectMedia(r rawMedia) Media {
	return Media{
		ID:        r.ID,
		Title:     r.Title.Rendered,
		SourceURL: r.SourceURL,
		MimeType:  r.MimeType,
		MediaType: r.MediaType,
		AltText:   r.AltText,
		Date:      r.Date,
	}
}

// MediaListQuery carries media list filters.
type MediaListQuery struct {
	Page      int
	PerPage   int
	Search    string
	MediaType string
	MimeType  string
}

// ListMedia fetches one page of media items.
func (c *Client) ListMedia(ctx context.Context, q MediaListQuery) (*MediaList, error) {
	page := effectivePage(q.Page)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(effectivePerPage(q.PerPage)))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.MediaType != "" {
		query.Set("media_type", q.MediaType)
	}
	if q.MimeType != "" {
		query.Set("mime_type", q.MimeType)
	}

	var raw []rawMedia
	headers, err := c.getJSON(ctx, c.apiBase, "/media", query, &raw)
	if err != nil {
		return nil, requestError("fetch media", err)
	}

	items := make([]Media, 0, len(raw))
	for _, r := range raw {
		items = append(items, projectMedia(r))
	}
	return &MediaList{Media: items, Pagination: paginationFrom(headers, page)}, nil
}

// GetMedia fetches a single media item by id.
func (c *Client) GetMedia(ctx context.Context, id int) (*Media, error) {
	if id <= 0 {
		return nil, validationErrorf("media id is required")
	}
	var raw rawMedia
	if _, err := c.getJSON(ctx, c.apiBase, fmt.Sprintf("/media/%d", id), nil, &raw); err != nil {
		return nil, requestError(fmt.Sprintf("fetch media %d", id), err)
	}
	media := projectMedia(raw)
	return &media, nil
}

// DeleteMedia deletes a media item. The remote API has no trash state for
// media, so force is always sent as true regardless of caller input.
func (c *Client) DeleteMedia(ctx context.Context, id int) (*DeleteResult, error) {
	if id <= 0 {
		return nil, validationErrorf("media id is required")
	}
	query := url.Values{"force": {"true"}}
	if err := c.deleteJSON(ctx, fmt.Sprintf("/media/%d", id), query, nil); err != nil {
		return nil, requestError(fmt.Sprintf("delete media %d", id), err)
	}
	return &DeleteResult{ID: id, Message: fmt.Sprintf("Media %d permanently deleted", id)}, nil
}

// MediaUpload carries an upload request. Data is base64-encoded file content.
type MediaUpload struct {
	Filename    string
	Data        string
	Title       string
	AltText     string
	Caption     string
	Description string
}

var mimeByExt = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"mp4":  "video/mp4",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
}

func mimeTypeFor(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if mt, ok := mimeByExt[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}

// UploadMedia uploads raw file bytes, then applies any supplied metadata in
// a second request against the created item. The upload endpoint does not
// accept metadata fields in the same call; a metadata failure fails the
// whole operation since the caller expects those fields to have been set.
func (c *Client) UploadMedia(ctx context.Context, up MediaUpload) (*Media, error) {
	if strings.TrimSpace(up.Filename) == "" {
		return nil, validationErrorf("filename is required to upload media")
	}
	if strings.TrimSpace(up.Data) == "" {
		return nil, validationErrorf("file data is required to upload media")
	}
	content, err := base64.StdEncoding.DecodeString(up.Data)
	if err != nil {
		return nil, validationErrorf("file data is not valid base64: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/media", bytes.NewReader(content))
	if err != nil {
		return nil, requestError("upload media", fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", mimeTypeFor(up.Filename))
	req.Header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, up.Filename))

	var raw rawMedia
	if _, err := c.do(req, &raw); err != nil {
		return nil, requestError("upload media", err)
	}

	meta := map[string]any{}
	if up.Title != "" {
		meta["title"] = up.Title
	}
	if up.AltText != "" {
		meta["alt_text"] = up.AltText
	}
	if up.Caption != "" {
		meta["caption"] = up.Caption
	}
	if up.Description != "" {
		meta["description"] = up.Description
	}
	if len(meta) > 0 {
		if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/media/%d", raw.ID), meta, &raw); err != nil {
			return nil, requestError(fmt.Sprintf("apply metadata to uploaded media %d", raw.ID), err)
		}
	}

	media := projectMedia(raw)
	return &media, nil
}
