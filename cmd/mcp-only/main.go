// HTTP-only entry point with toolset selection, for deployments that want a
// reduced catalogue (e.g. no media or search tools).
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/openpress/wordpress-mcp-server/internal/app"
	"github.com/openpress/wordpress-mcp-server/internal/config"
	"github.com/openpress/wordpress-mcp-server/internal/logging"
	"github.com/openpress/wordpress-mcp-server/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", ":8080", "MCP HTTP listen address (e.g., :8080)")
	toolsets := flag.String("toolsets", config.ToolsetCore, "Comma-separated toolsets: core,media,search")
	configPath := flag.String("config", "", "Optional YAML config file")
	flag.Parse()

	logger, cleanup, err := logging.New("mcp-only")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer cleanup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.HTTPAddr = *httpAddr
	cfg.Toolsets = config.ParseToolsets(*toolsets)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	server, err := app.NewServer(cfg, logger)
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	srv := mcp.NewHTTPServer(server, cfg.HTTPAddr, logger)
	log.Printf("MCP server listening on %s (toolsets=%v)", cfg.HTTPAddr, cfg.Toolsets)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
