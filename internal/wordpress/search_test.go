package wordpress

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchRequiresTerm(t *testing.T) {
	requests := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := c.Search(context.Background(), SearchQuery{Term: "   "})
	require.IsType(t, &ValidationError{}, err)
	require.Zero(t, requests)
}

func TestSearchProjectsHitsAndPagination(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/search", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("X-WP-Total", "2")
		w.Header().Set("X-WP-TotalPages", "1")
		_, _ = w.Write([]byte(`[
			{"id": 7, "title": "Hello World", "url": "https://example.com/hello-world", "type": "post", "subtype": "post"},
			{"id": 12, "title": "About", "url": "https://example.com/about", "type": "post", "subtype": "page"}
		]`))
	}))

	results, err := c.Search(context.Background(), SearchQuery{Term: "hello", Type: "post", Subtype: "page"})
	require.NoError(t, err)

	require.Equal(t, "hello", gotQuery.Get("search"))
	require.Equal(t, "post", gotQuery.Get("type"))
	require.Equal(t, "page", gotQuery.Get("subtype"))

	require.Len(t, results.Hits, 2)
	require.Equal(t, SearchHit{ID: 7, Title: "Hello World", URL: "https://example.com/hello-world", Type: "post", Subtype: "post"}, results.Hits[0])
	require.Equal(t, 2, *results.Total)
}

func TestSearchOmitsUnsetFilters(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := c.Search(context.Background(), SearchQuery{Term: "x"})
	require.NoError(t, err)
	require.False(t, gotQuery.Has("type"))
	require.False(t, gotQuery.Has("subtype"))
}

func TestSiteInfoProjection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"name": "Example Site",
			"description": "Just another site",
			"url": "https://example.com",
			"timezone_string": "Europe/Berlin",
			"gmt_offset": 1
		}`))
	}))

	info, err := c.SiteInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Example Site", info.Name)
	require.Equal(t, "Europe/Berlin", info.Timezone)
	// Capability map is a local declaration, not read from the response.
	require.True(t, info.Capabilities["posts"])
	require.True(t, info.Capabilities["media"])
	require.True(t, info.Capabilities["search"])
}

func TestSiteInfoTimezoneFallsBackToOffset(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "S", "url": "https://example.com", "gmt_offset": -5}`))
	}))

	info, err := c.SiteInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, "UTC-5", info.Timezone)
}
