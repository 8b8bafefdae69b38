package wordpress

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := NewClient(Config{SiteURL: ts.URL, Username: "admin", AppPassword: "secret"})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing site", Config{Username: "u", AppPassword: "p"}},
		{"missing username", Config{SiteURL: "https://example.com", AppPassword: "p"}},
		{"missing password", Config{SiteURL: "https://example.com", Username: "u"}},
		{"blank password", Config{SiteURL: "https://example.com", Username: "u", AppPassword: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.cfg)
			require.Error(t, err)
			require.IsType(t, &ValidationError{}, err)
		})
	}
}

func TestNewClientDerivesBasicAuthOnce(t *testing.T) {
	c, err := NewClient(Config{SiteURL: "https://example.com/", Username: "admin", AppPassword: "app pass"})
	require.NoError(t, err)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:app pass"))
	require.Equal(t, want, c.auth)
	require.Equal(t, "https://example.com/wp-json/wp/v2", c.apiBase)
	require.Equal(t, "https://example.com/wp-json", c.rootBase)
}

func TestRequestCarriesAuthHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := c.ListPosts(context.Background(), PostListQuery{})
	require.NoError(t, err)
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	require.Equal(t, want, gotAuth)
}

func TestPaginationFromHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("X-Wp-Total", "42")
	h.Set("X-Wp-Totalpages", "5")

	p := paginationFrom(h, 2)
	require.NotNil(t, p.Total)
	require.Equal(t, 42, *p.Total)
	require.NotNil(t, p.TotalPages)
	require.Equal(t, 5, *p.TotalPages)
	require.Equal(t, 2, p.CurrentPage)
}

func TestPaginationMissingHeadersSurfaceAsNull(t *testing.T) {
	p := paginationFrom(http.Header{}, 1)
	require.Nil(t, p.Total)
	require.Nil(t, p.TotalPages)
	require.Equal(t, 1, p.CurrentPage)

	h := http.Header{}
	h.Set("X-Wp-Total", "not-a-number")
	p = paginationFrom(h, 1)
	require.Nil(t, p.Total)
}

func TestEffectivePerPageClamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 10},
		{-3, 10},
		{1, 1},
		{50, 50},
		{100, 100},
		{101, 100},
		{500, 100},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, effectivePerPage(tt.in), "per_page=%d", tt.in)
	}
}

func TestRemoteErrorIncludesStatusAndBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"rest_post_invalid_id"}`))
	}))

	_, err := c.GetPost(context.Background(), 42)
	require.Error(t, err)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "fetch post 42", reqErr.Op)
	require.Contains(t, err.Error(), "Failed to fetch post 42")
	require.Contains(t, err.Error(), "404")
}
