package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type rawPage struct {
	ID        int           `json:"id"`
	Date      string        `json:"date"`
	Modified  string        `json:"modified"`
	Status    string        `json:"status"`
	Link      string        `json:"link"`
	Title     renderedField `json:"title"`
	Content   renderedField `json:"content"`
	Excerpt   renderedField `json:"excerpt"`
	Author    int           `json:"author"`
	Parent    int           `json:"parent"`
	MenuOrder int           `json:"menu_order"`
}

// Page is the projected page shape.
type Page struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Excerpt   string `json:"excerpt,omitempty"`
	Status    string `json:"status"`
	Link      string `json:"link"`
	Date      string `json:"date,omitempty"`
	Modified  string `json:"modified,omitempty"`
	Author    int    `json:"author,omitempty"`
	Parent    int    `json:"parent,omitempty"`
	MenuOrder int    `json:"menuOrder,omitempty"`
}

// PageList pairs a page of pages with its pagination counters.
type PageList struct {
	Pages []Page `json:"pages"`
	Pagination
}

func projectPage(r rawPage) Page {
	return Page{
		ID:        r.ID,
		Title:     r.Title.Rendered,
		Content:   r.Content.Rendered,
		Excerpt:   r.Excerpt.Rendered,
		Status:    r.Status,
		Link:      r.Link,
		Date:      r.Date,
		Modified:  r.Modified,
		Author:    r.Author,
		Parent:    r.Parent,
		MenuOrder: r.MenuOrder,
	}
}

func projectPageSummary(r rawPage) PostSummary {
	return PostSummary{ID: r.ID, Title: r.Title.Rendered, Link: r.Link, Status: r.Status}
}

// PageListQuery carries the caller-supplied page list filters.
type PageListQuery struct {
	Page    int
	PerPage int
	Search  string
	Status  string
	OrderBy string
	Order   string
	Parent  int
}

// ListPages fetches one page of pages with the same defaults as ListPosts.
func (c *Client) ListPages(ctx context.Context, q PageListQuery) (*PageList, error) {
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
	if q.Parent > 0 {
		query.Set("parent", strconv.Itoa(q.Parent))
	}

	var raw []rawPage
	headers, err := c.getJSON(ctx, c.apiBase, "/pages", query, &raw)
	if err != nil {
		return nil, requestError("fetch pages", err)
	}

	pages := make([]Page, 0, len(raw))
	for _, r := range raw {
		pages = append(pages, projectPage(r))
	}
	return &PageList{Pages: pages, Pagination: paginationFrom(headers, page)}, nil
}

// GetPage fetches a single page by id.
func (c *Client) GetPage(ctx context.Context, id int) (*Page, error) {
	if id <= 0 {
		return nil, validationErrorf("page id is required")
	}
	var raw rawPage
	if _, err := c.getJSON(ctx, c.apiBase, fmt.Sprintf("/pages/%d", id), nil, &raw); err != nil {
		return nil, requestError(fmt.Sprintf("fetch page %d", id), err)
	}
	page := projectPage(raw)
	return &page, nil
}

// PageDraft carries the fields accepted when creating a page.
type PageDraft struct {
	Title     string
	Content   string
	Excerpt   string
	Status    string
	Parent    int
	MenuOrder int
}

// CreatePage creates a page. Title is mandatory; status defaults to draft.
func (c *Client) CreatePage(ctx context.Context, d PageDraft) (*PostSummary, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, validationErrorf("title is required to create a page")
	}

	payload := map[string]any{
		"title":   d.Title,
		"content": d.Content,
		"excerpt": d.Excerpt,
		"status":  defaultStr(d.Status, "draft"),
	}
	if d.Parent > 0 {
		payload["parent"] = d.Parent
	}
	if d.MenuOrder > 0 {
		payload["menu_order"] = d.MenuOrder
	}

	var raw rawPage
	if err := c.sendJSON(ctx, http.MethodPost, "/pages", payload, &raw); err != nil {
		return nil, requestError("create page", err)
	}
	summary := projectPageSummary(raw)
	return &summary, nil
}

// PagePatch carries a partial page update with explicit presence per field.
type PagePatch struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Status    *string
	Parent    *int
	MenuOrder *int
}

// UpdatePage merges the provided fields into the page.
func (c *Client) UpdatePage(ctx context.Context, id int, p PagePatch) (*PostSummary, error) {
	if id <= 0 {
		return nil, validationErrorf("page id is required")
	}

	payload := map[string]any{}
	setIf(payload, "title", p.Title)
	setIf(payload, "content", p.Content)
	setIf(payload, "excerpt", p.Excerpt)
	setIf(payload, "status", p.Status)
	setIf(payload, "parent", p.Parent)
	setIf(payload, "menu_order", p.MenuOrder)

	var raw rawPage
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/pages/%d", id), payload, &raw); err != nil {
		return nil, requestError(fmt.Sprintf("update page %d", id), err)
	}
	summary := projectPageSummary(raw)
	return &summary, nil
}

// DeletePage trashes the page, or deletes it permanently when force is set.
func (c *Client) DeletePage(ctx context.Context, id int, force bool) (*DeleteResult, error) {
	if id <= 0 {
		return nil, validationErrorf("page id is required")
	}
	query := url.Values{"force": {strconv.FormatBool(force)}}
	if err := c.deleteJSON(ctx, fmt.Sprintf("/pages/%d", id), query, nil); err != nil {
		return nil, requestError(fmt.Sprintf("delete page %d", id), err)
	}
	return &DeleteResult{ID: id, Message: deleteMessage("Page", id, force)}, nil
}

// PublishPage sets the page status to publish and changes nothing else.
func (c *Client) PublishPage(ctx context.Context, id int) (*PostSummary, error) {
	status := "publish"
	summary, err := c.UpdatePage(ctx, id, PagePatch{Status: &status})
	if err != nil {
		if reqErr, ok := err.(*RequestError); ok {
			return nil, requestError(fmt.Sprintf("publish page %d", id), reqErr.Err)
		}
		return nil, err
	}
	return summary, nil
}
