package app

import (
	"testing"

	"github.com/openpress/wordpress-mcp-server/internal/config"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

func testClient(t *testing.T) *wordpress.Client {
	t.Helper()
	client, err := wordpress.NewClient(wordpress.Config{
		SiteURL:     "https://example.com",
		Username:    "admin",
		AppPassword: "secret",
	})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func toolNames(t *testing.T, toolsets ...string) map[string]bool {
	t.Helper()
	cfg := &config.Config{
		SiteURL:     "https://example.com",
		Username:    "admin",
		AppPassword: "secret",
		Toolsets:    toolsets,
	}
	names := map[string]bool{}
	for _, d := range NewToolbox(testClient(t), cfg, nil).Describe() {
		names[d.Name] = true
	}
	return names
}

func TestToolboxFullCatalogue(t *testing.T) {
	names := toolNames(t, config.ToolsetCore, config.ToolsetMedia, config.ToolsetSearch)
	if len(names) != 20 {
		t.Fatalf("expected 20 tools, got %d: %v", len(names), names)
	}
	for _, want := range []string{
		"list_posts", "get_post", "create_post", "update_post", "delete_post", "publish_post",
		"list_pages", "get_page", "create_page", "update_page", "delete_page", "publish_page",
		"list_categories", "list_tags", "get_site_info",
		"list_media", "get_media", "upload_media", "delete_media",
		"search",
	} {
		if !names[want] {
			t.Fatalf("missing tool %s", want)
		}
	}
}

func TestToolboxCoreOnlyExcludesMediaAndSearch(t *testing.T) {
	names := toolNames(t, config.ToolsetCore)
	if len(names) != 15 {
		t.Fatalf("expected 15 core tools, got %d", len(names))
	}
	if names["upload_media"] || names["search"] {
		t.Fatalf("media/search tools leaked into core catalogue: %v", names)
	}
}

func TestNewServerFailsOnMissingCredentials(t *testing.T) {
	cfg := &config.Config{SiteURL: "https://example.com", Toolsets: config.AllToolsets}
	if _, err := NewServer(cfg, nil); err == nil {
		t.Fatal("expected construction failure without credentials")
	}
}
