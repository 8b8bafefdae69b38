package wordpress

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePageJSON = `{
	"id": 12,
	"status": "publish",
	"link": "https://example.com/about",
	"title": {"rendered": "About"},
	"content": {"rendered": "<p>About us</p>"},
	"excerpt": {"rendered": ""},
	"author": 1,
	"parent": 4,
	"menu_order": 2
}`

func TestListPagesForwardsParent(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/pages", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte("[" + samplePageJSON + "]"))
	}))

	list, err := c.ListPages(context.Background(), PageListQuery{Parent: 4})
	require.NoError(t, err)
	require.Equal(t, "4", gotQuery.Get("parent"))
	require.Equal(t, "publish", gotQuery.Get("status"))
	require.Len(t, list.Pages, 1)
	require.Equal(t, 4, list.Pages[0].Parent)
	require.Equal(t, 2, list.Pages[0].MenuOrder)
}

func TestCreatePageRequiresTitle(t *testing.T) {
	requests := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
	}))

	_, err := c.CreatePage(context.Background(), PageDraft{Content: "no title"})
	require.IsType(t, &ValidationError{}, err)
	require.Zero(t, requests)
}

func TestCreatePageDefaultsAndHierarchy(t *testing.T) {
	var payload map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(samplePageJSON))
	}))

	summary, err := c.CreatePage(context.Background(), PageDraft{Title: "About", Parent: 4, MenuOrder: 2})
	require.NoError(t, err)
	require.Equal(t, "draft", payload["status"])
	require.EqualValues(t, 4, payload["parent"])
	require.EqualValues(t, 2, payload["menu_order"])
	require.Equal(t, "About", summary.Title)
}

func TestUpdatePagePartialPayload(t *testing.T) {
	var payload map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wp-json/wp/v2/pages/12", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(samplePageJSON))
	}))

	order := 0
	_, err := c.UpdatePage(context.Background(), 12, PagePatch{MenuOrder: &order})
	require.NoError(t, err)
	// explicit zero is sent, nothing else is
	require.Equal(t, map[string]any{"menu_order": float64(0)}, payload)
}

func TestDeletePageMessages(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePageJSON))
	}))

	res, err := c.DeletePage(context.Background(), 12, false)
	require.NoError(t, err)
	require.Equal(t, "Page 12 moved to trash", res.Message)
}

func TestPublishPage(t *testing.T) {
	var payload map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(samplePageJSON))
	}))

	_, err := c.PublishPage(context.Background(), 12)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"status": "publish"}, payload)
}
