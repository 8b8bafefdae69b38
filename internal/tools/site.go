package tools

import (
	"context"
	"encoding/json"

	"github.com/openpress/wordpress-mcp-server/internal/protocol"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

// siteInfoTool reports site metadata and adapter capabilities.
type siteInfoTool struct {
	client *wordpress.Client
}

// SiteInfo constructs the site info tool.
func SiteInfo(client *wordpress.Client) *siteInfoTool {
	return &siteInfoTool{client: client}
}

func (t *siteInfoTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_site_info",
		Description: "Fetch site name, description, URL, timezone, and the operations this server supports.",
	}
}

func (t *siteInfoTool) Invoke(ctx context.Context, _ json.RawMessage) (any, error) {
	return t.client.SiteInfo(ctx)
}
