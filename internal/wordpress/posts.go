package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type renderedField struct {
	Rendered string `json:"rendered"`
}

type rawPost struct {
	ID         int           `json:"id"`
	Date       string        `json:"date"`
	Modified   string        `json:"modified"`
	Status     string        `json:"status"`
	Link       string        `json:"link"`
	Title      renderedField `json:"title"`
	Content    renderedField `json:"content"`
	Excerpt    renderedField `json:"excerpt"`
	Author     int           `json:"author"`
	Categories []int         `json:"categories"`
	Tags       []int         `json:"tags"`
}

// Post is the projected post shape the tool contracts promise.
type Post struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`
	Status     string `json:"status"`
	Link       string `json:"link"`
	Date       string `json:"date,omitempty"`
	Modified   string `json:"modified,omitempty"`
	Author     int    `json:"author,omitempty"`
	Categories []int  `json:"categories,omitempty"`
	Tags       []int  `json:"tags,omitempty"`
}

// PostSummary is the narrower projection returned by create/update calls.
type PostSummary struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Link   string `json:"link"`
	Status string `json:"status"`
}

// PostList pairs a page of posts with its pagination counters.
type PostList struct {
	Posts []Post `json:"posts"`
	Pagination
}

// DeleteResult reports the outcome of a delete call.
type DeleteResult struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

func projectPost(r rawPost) Post {
	return Post{
		ID:         r.ID,
		Title:      r.Title.Rendered,
		Content:    r.Content.Rendered,
		Excerpt:    r.Excerpt.Rendered,
		Status:     r.Status,
		Link:       r.Link,
		Date:       r.Date,
		Modified:   r.Modified,
		Author:     r.Author,
		Categories: r.Categories,
		Tags:       r.Tags,
	}
}

func projectPostSummary(r rawPost) PostSummary {
	return PostSummary{ID: r.ID, Title: r.Title.Rendered, Link: r.Link, Status: r.Status}
}

// PostListQuery carries the caller-supplied post list filters. Zero values
// mean "not provided".
type PostListQuery struct {
	Page       int
	PerPage    int
	Search     string
	Status     string
	OrderBy    string
	Order      string
	Categories []int
	Tags       []int
}

// ListPosts fetches one page of posts. Status defaults to publish so drafts
// never leak through an unfiltered list call.
func (c *Client) ListPosts(ctx context.Context, q PostListQuery) (*PostList, error) {
	page := effectivePage(q.Page)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(effectivePerPage(q.PerPage)))
	query.Set("orderby", defaultStr(q.OrderBy, "date"))
	query.Set("order", defaultStr(q.Order, "desc"))
	query.Set("status", defaultStr(q.Status, "publish"))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if len(q.Categories) > 0 {
		query.Set("categories", joinIDs(q.Categories))
	}
	if len(q.Tags) > 0 {
		query.Set("tags", joinIDs(q.Tags))
	}

	var raw []rawPost
	headers, err := c.getJSON(ctx, c.apiBase, "/posts", query, &raw)
	if err != nil {
		return nil, requestError("fetch posts", err)
	}

	posts := make([]Post, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, projectPost(r))
	}
	return &PostList{Posts: posts, Pagination: paginationFrom(headers, page)}, nil
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id int) (*Post, error) {
	if id <= 0 {
		return nil, validationErrorf("post id is required")
	}
	var raw rawPost
	if _, err := c.getJSON(ctx, c.apiBase, fmt.Sprintf("/posts/%d", id), nil, &raw); err != nil {
		return nil, requestError(fmt.Sprintf("fetch post %d", id), err)
	}
	post := projectPost(raw)
	return &post, nil
}

// PostDraft carries the fields accepted when creating a post.
type PostDraft struct {
	Title      string
	Content    string
	Excerpt    string
	Status     string
	Categories []int
	Tags       []int
}

// CreatePost creates a post. Title is mandatory and checked before any
// network call. Status defaults to draft, never publish.
func (c *Client) CreatePost(ctx context.Context, d PostDraft) (*PostSummary, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, validationErrorf("title is required to create a post")
	}

	payload := map[string]any{
		"title":   d.Title,
		"content": d.Content,
		"excerpt": d.Excerpt,
		"status":  defaultStr(d.Status, "draft"),
	}
	if len(d.Categories) > 0 {
		payload["categories"] = d.Categories
	}
	if len(d.Tags) > 0 {
		payload["tags"] = d.Tags
	}

	var raw rawPost
	if err := c.sendJSON(ctx, http.MethodPost, "/posts", payload, &raw); err != nil {
		return nil, requestError("create post", err)
	}
	summary := projectPostSummary(raw)
	return &summary, nil
}

// PostPatch carries a partial update. Nil fields are omitted from the
// payload; a non-nil pointer to an empty value is sent explicitly, so empty
// strings and empty id lists round-trip through updates.
type PostPatch struct {
	Title      *string
	Content    *string
	Excerpt    *string
	Status     *string
	Categories *[]int
	Tags       *[]int
}

// UpdatePost merges the provided fields into the post. The remote API
// models update as POST, not PUT or PATCH.
func (c *Client) UpdatePost(ctx context.Context, id int, p PostPatch) (*PostSummary, error) {
	if id <= 0 {
		return nil, validationErrorf("post id is required")
	}

	payload := map[string]any{}
	setIf(payload, "title", p.Title)
	setIf(payload, "content", p.Content)
	setIf(payload, "excerpt", p.Excerpt)
	setIf(payload, "status", p.Status)
	setIf(payload, "categories", p.Categories)
	setIf(payload, "tags", p.Tags)

	var raw rawPost
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/posts/%d", id), payload, &raw); err != nil {
		return nil, requestError(fmt.Sprintf("update post %d", id), err)
	}
	summary := projectPostSummary(raw)
	return &summary, nil
}

// DeletePost trashes the post, or deletes it permanently when force is set.
func (c *Client) DeletePost(ctx context.Context, id int, force bool) (*DeleteResult, error) {
	if id <= 0 {
		return nil, validationErrorf("post id is required")
	}
	query := url.Values{"force": {strconv.FormatBool(force)}}
	if err := c.deleteJSON(ctx, fmt.Sprintf("/posts/%d", id), query, nil); err != nil {
		return nil, requestError(fmt.Sprintf("delete post %d", id), err)
	}
	return &DeleteResult{ID: id, Message: deleteMessage("Post", id, force)}, nil
}

// PublishPost sets the post status to publish and changes nothing else.
func (c *Client) PublishPost(ctx context.Context, id int) (*PostSummary, error) {
	status := "publish"
	summary, err := c.UpdatePost(ctx, id, PostPatch{Status: &status})
	if err != nil {
		if reqErr, ok := err.(*RequestError); ok {
			return nil, requestError(fmt.Sprintf("publish post %d", id), reqErr.Err)
		}
		return nil, err
	}
	return summary, nil
}

func deleteMessage(kind string, id int, force bool) string {
	if force {
		return fmt.Sprintf("%s %d permanently deleted", kind, id)
	}
	return fmt.Sprintf("%s %d moved to trash", kind, id)
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func setIf[T any](payload map[string]any, key string, v *T) {
	if v != nil {
		payload[key] = *v
	}
}
