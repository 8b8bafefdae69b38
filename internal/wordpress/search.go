package wordpress

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// SearchHit is one cross-type search result.
type SearchHit struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}

// SearchResults pairs hits with pagination counters.
type SearchResults struct {
	Hits []SearchHit `json:"results"`
	Pagination
}

// SearchQuery carries cross-type search parameters.
type SearchQuery struct {
	Term    string
	Type    string
	Subtype string
	Page    int
	PerPage int
}

// Search runs a cross-type search. The term is mandatory and checked before
// any network call.
func (c *Client) Search(ctx context.Context, q SearchQuery) (*SearchResults, error) {
	if strings.TrimSpace(q.Term) == "" {
		return nil, validationErrorf("search term is required")
	}
	page := effectivePage(q.Page)

	query := url.Values{}
	query.Set("search", q.Term)
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(effectivePerPage(q.PerPage)))
	if q.Type != "" {
		query.Set("type", q.Type)
	}
	if q.Subtype != "" {
		query.Set("subtype", q.Subtype)
	}

	var raw []SearchHit
	headers, err := c.getJSON(ctx, c.apiBase, "/search", query, &raw)
	if err != nil {
		return nil, requestError("search content", err)
	}
	return &SearchResults{Hits: raw, Pagination: paginationFrom(headers, page)}, nil
}
