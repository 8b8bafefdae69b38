// Package wordpress implements the REST adapter for the WordPress v2 API.
// Each method performs one outbound call (media upload may perform two) and
// projects the remote representation into the stable shapes the tool
// contracts promise.
package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Config carries the connection settings for a client.
type Config struct {
	SiteURL     string
	Username    string
	AppPassword string
	Timeout     time.Duration
}

// Client issues authenticated requests against a WordPress site. It is
// immutable after construction and safe for concurrent use.
type Client struct {
	apiBase  string // <site>/wp-json/wp/v2
	rootBase string // <site>/wp-json
	auth     string
	http     *http.Client
}

// NewClient validates the connection settings and builds a client. The
// basic-auth header is derived once here, never per call.
func NewClient(cfg Config) (*Client, error) {
	site := strings.TrimSuffix(strings.TrimSpace(cfg.SiteURL), "/")
	if site == "" {
		return nil, validationErrorf("site URL is required")
	}
	user := strings.TrimSpace(cfg.Username)
	if user == "" {
		return nil, validationErrorf("username is required")
	}
	pass := strings.TrimSpace(cfg.AppPassword)
	if pass == "" {
		return nil, validationErrorf("application password is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiBase:  site + "/wp-json/wp/v2",
		rootBase: site + "/wp-json",
		auth:     "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass)),
		http:     &http.Client{Timeout: timeout},
	}, nil
}

// Pagination is read from the x-wp-total / x-wp-totalpages response headers.
// Absent or unparsable headers surface as null rather than a fabricated
// number.
type Pagination struct {
	Total       *int `json:"total"`
	TotalPages  *int `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
}

func paginationFrom(h http.Header, page int) Pagination {
	return Pagination{
		Total:       headerInt(h, "x-wp-total"),
		TotalPages:  headerInt(h, "x-wp-totalpages"),
		CurrentPage: page,
	}
}

func headerInt(h http.Header, key string) *int {
	raw := strings.TrimSpace(h.Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// Page size clamps to [1,100] with fallback 10; page number falls back to 1.
func effectivePerPage(v int) int {
	switch {
	case v <= 0:
		return 10
	case v > 100:
		return 100
	default:
		return v
	}
}

func effectivePage(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}

func (c *Client) getJSON(ctx context.Context, base, path string, query url.Values, out any) (http.Header, error) {
	u := base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	_, err = c.do(req, out)
	return err
}

func (c *Client) deleteJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.apiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	_, err = c.do(req, out)
	return err
}

// do sets the shared headers, checks the status, and decodes the body into
// out when non-nil. Response headers are returned for pagination reads.
func (c *Client) do(req *http.Request, out any) (http.Header, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.auth)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, nil
}
