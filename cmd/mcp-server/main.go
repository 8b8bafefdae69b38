// Stdio MCP server entry point. Stdout carries protocol frames; all logging
// goes to the side-channel log file.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/openpress/wordpress-mcp-server/internal/app"
	"github.com/openpress/wordpress-mcp-server/internal/config"
	"github.com/openpress/wordpress-mcp-server/internal/logging"
	"github.com/openpress/wordpress-mcp-server/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Optional YAML config file")
	flag.Parse()

	// log goes to stderr until the file logger is up; never to stdout.
	log.SetOutput(os.Stderr)

	logger, cleanup, err := logging.New("mcp-stdio")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer cleanup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	server, err := app.NewServer(cfg, logger)
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	logger.Infof("stdio server started (toolsets=%v)", cfg.Toolsets)
	transport := mcp.NewStdioTransport(os.Stdin, os.Stdout, logger)
	if err := transport.Run(context.Background(), server); err != nil {
		if errors.Is(err, io.EOF) {
			logger.Info("client disconnected")
			return
		}
		log.Fatalf("MCP server error: %v", err)
	}
}
