// Package app wires configuration, the WordPress adapter, the tool
// catalogue, and the MCP server together.
package app

import (
	"github.com/sirupsen/logrus"

	"github.com/openpress/wordpress-mcp-server/internal/config"
	"github.com/openpress/wordpress-mcp-server/internal/mcp"
	"github.com/openpress/wordpress-mcp-server/internal/tools"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

// NewToolbox builds the tool catalogue for the enabled toolsets. The
// catalogue is one table; variants differ only by which rows are included.
func NewToolbox(client *wordpress.Client, cfg *config.Config, logger *logrus.Entry) *mcp.Toolbox {
	var list []mcp.Tool

	if cfg.HasToolset(config.ToolsetCore) {
		list = append(list,
			// Posts
			tools.ListPosts(client),
			tools.GetPost(client),
			tools.CreatePost(client),
			tools.UpdatePost(client),
			tools.DeletePost(client),
			tools.PublishPost(client),

			// Pages
			tools.ListPages(client),
			tools.GetPage(client),
			tools.CreatePage(client),
			tools.UpdatePage(client),
			tools.DeletePage(client),
			tools.PublishPage(client),

			// Taxonomies and site metadata
			tools.ListCategories(client),
			tools.ListTags(client),
			tools.SiteInfo(client),
		)
	}

	if cfg.HasToolset(config.ToolsetMedia) {
		list = append(list,
			tools.ListMedia(client),
			tools.GetMedia(client),
			tools.UploadMedia(client),
			tools.DeleteMedia(client),
		)
	}

	if cfg.HasToolset(config.ToolsetSearch) {
		list = append(list, tools.Search(client))
	}

	return mcp.NewToolbox(logger, list...)
}

// NewServer builds the adapter from configuration and returns a ready MCP
// server. Construction fails on missing credentials.
func NewServer(cfg *config.Config, logger *logrus.Entry) (*mcp.Server, error) {
	client, err := wordpress.NewClient(wordpress.Config{
		SiteURL:     cfg.SiteURL,
		Username:    cfg.Username,
		AppPassword: cfg.AppPassword,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return mcp.NewServer(NewToolbox(client, cfg, logger)), nil
}
