package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/openpress/wordpress-mcp-server/internal/app"
	"github.com/openpress/wordpress-mcp-server/internal/config"
	"github.com/openpress/wordpress-mcp-server/internal/logging"
	"github.com/openpress/wordpress-mcp-server/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", "", "MCP HTTP listen address (default from MCP_HTTP_ADDR or :8080)")
	configPath := flag.String("config", "", "Optional YAML config file")
	flag.Parse()

	logger, cleanup, err := logging.New("mcp-http")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer cleanup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}

	server, err := app.NewServer(cfg, logger)
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	srv := mcp.NewHTTPServer(server, cfg.HTTPAddr, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("MCP HTTP server listening on %s", cfg.HTTPAddr)
		logger.Infof("listening on %s (toolsets=%v)", cfg.HTTPAddr, cfg.Toolsets)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
