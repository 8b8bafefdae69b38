// manifestgen writes the tool catalogue as a JSON manifest, for client
// configuration and docs. No network calls are made; the adapter is built
// with placeholder credentials purely to construct descriptors.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/openpress/wordpress-mcp-server/internal/app"
	"github.com/openpress/wordpress-mcp-server/internal/config"
	"github.com/openpress/wordpress-mcp-server/internal/protocol"
	"github.com/openpress/wordpress-mcp-server/internal/version"
	"github.com/openpress/wordpress-mcp-server/internal/wordpress"
)

// Options captures manifest generation settings.
type Options struct {
	Toolsets  []string
	OutputDir string
}

// Manifest is the written document.
type Manifest struct {
	Name    string                    `json:"name"`
	Version string                    `json:"version"`
	Tools   []protocol.ToolDescriptor `json:"tools"`
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	path, count, err := Generate(*opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("manifest written to %s (%d tools)\n", path, count)
}

func parseFlags() (*Options, error) {
	var (
		toolsets = flag.String("toolsets", "core,media,search", "comma-separated toolsets to include")
		outDir   = flag.String("output_dir", ".", "output directory for the manifest file")
	)
	flag.Parse()

	parsed := config.ParseToolsets(*toolsets)
	if len(parsed) == 0 {
		return nil, errors.New("at least one toolset is required")
	}
	return &Options{Toolsets: parsed, OutputDir: *outDir}, nil
}

// Generate builds the catalogue for the requested toolsets and writes
// manifest.json. It returns the written path and tool count.
func Generate(opts Options) (string, int, error) {
	cfg := &config.Config{
		SiteURL:     "https://example.com",
		Username:    "manifest",
		AppPassword: "manifest",
		Toolsets:    opts.Toolsets,
	}
	if err := cfg.Validate(); err != nil {
		return "", 0, err
	}

	client, err := wordpress.NewClient(wordpress.Config{
		SiteURL:     cfg.SiteURL,
		Username:    cfg.Username,
		AppPassword: cfg.AppPassword,
	})
	if err != nil {
		return "", 0, err
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)
	toolbox := app.NewToolbox(client, cfg, logrus.NewEntry(silent))

	manifest := Manifest{
		Name:    version.Name,
		Version: version.Get().Version,
		Tools:   toolbox.Describe(),
	}

	raw, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", 0, err
	}
	raw = append(raw, '\n')

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", 0, err
	}
	path := filepath.Join(opts.OutputDir, "manifest.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", 0, err
	}
	return path, len(manifest.Tools), nil
}
