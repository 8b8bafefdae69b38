package wordpress

import (
	"context"
	"net/url"
	"strconv"
)

// Term is the projected category/tag shape.
type Term struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
	Parent      int    `json:"parent,omitempty"`
}

// TermList pairs a page of terms with its pagination counters.
type TermList struct {
	Terms []Term `json:"terms"`
	Pagination
}

// TermListQuery carries taxonomy list filters. HideEmpty uses a pointer so
// an explicit false is distinguishable from "not provided".
type TermListQuery struct {
	Page      int
	PerPage   int
	Search    string
	OrderBy   string
	Order     string
	HideEmpty *bool
}

// ListCategories fetches one page of categories.
func (c *Client) ListCategories(ctx context.Context, q TermListQuery) (*TermList, error) {
	return c.listTerms(ctx, "/categories", "fetch categories", q)
}

// ListTags fetches one page of tags.
func (c *Client) ListTags(ctx context.Context, q TermListQuery) (*TermList, error) {
	return c.listTerms(ctx, "/tags", "fetch tags", q)
}

func (c *Client) listTerms(ctx context.Context, path, op string, q TermListQuery) (*TermList, error) {
	page := effectivePage(q.Page)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(effectivePerPage(q.PerPage)))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	// Terms have no date ordering; forward only what the caller asked for.
	if q.OrderBy != "" {
		query.Set("orderby", q.OrderBy)
	}
	if q.Order != "" {
		query.Set("order", q.Order)
	}
	if q.HideEmpty != nil {
		query.Set("hide_empty", strconv.FormatBool(*q.HideEmpty))
	}

	var raw []Term
	headers, err := c.getJSON(ctx, c.apiBase, path, query, &raw)
	if err != nil {
		return nil, requestError(op, err)
	}
	return &TermList{Terms: raw, Pagination: paginationFrom(headers, page)}, nil
}
