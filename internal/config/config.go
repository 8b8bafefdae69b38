// Package config resolves the server configuration from environment
// variables and an optional YAML file. ${VAR} references inside the file
// are expanded before parsing; explicit file values win over env.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Toolset names accepted in configuration.
const (
	ToolsetCore   = "core"
	ToolsetMedia  = "media"
	ToolsetSearch = "search"
)

// AllToolsets is the default toolset selection.
var AllToolsets = []string{ToolsetCore, ToolsetMedia, ToolsetSearch}

// Config is the resolved process configuration.
type Config struct {
	SiteURL     string `yaml:"site_url"`
	Username    string `yaml:"username"`
	AppPassword string `yaml:"app_password"`

	HTTPAddr string   `yaml:"http_addr"`
	Toolsets []string `yaml:"toolsets"`

	Timeout    time.Duration `yaml:"-"`
	TimeoutRaw string        `yaml:"request_timeout"`
}

// Load builds the configuration. path may be empty, in which case only the
// environment is consulted.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		expanded := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = os.Getenv("WORDPRESS_SITE_URL")
	}
	if cfg.Username == "" {
		cfg.Username = os.Getenv("WORDPRESS_USERNAME")
	}
	if cfg.AppPassword == "" {
		cfg.AppPassword = os.Getenv("WORDPRESS_APP_PASSWORD")
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = os.Getenv("MCP_HTTP_ADDR")
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.TimeoutRaw == "" {
		cfg.TimeoutRaw = os.Getenv("WORDPRESS_REQUEST_TIMEOUT")
	}
	if len(cfg.Toolsets) == 0 {
		if raw := os.Getenv("MCP_TOOLSETS"); raw != "" {
			cfg.Toolsets = ParseToolsets(raw)
		} else {
			cfg.Toolsets = AllToolsets
		}
	}

	if cfg.TimeoutRaw != "" {
		d, err := time.ParseDuration(cfg.TimeoutRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing request_timeout: %w", err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the mandatory connection settings are present and
// the toolset names are known.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SiteURL) == "" {
		return fmt.Errorf("site URL is required: set WORDPRESS_SITE_URL or site_url")
	}
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("username is required: set WORDPRESS_USERNAME or username")
	}
	if strings.TrimSpace(c.AppPassword) == "" {
		return fmt.Errorf("application password is required: set WORDPRESS_APP_PASSWORD or app_password")
	}
	for _, ts := range c.Toolsets {
		switch ts {
		case ToolsetCore, ToolsetMedia, ToolsetSearch:
		default:
			return fmt.Errorf("unknown toolset %q (valid: core, media, search)", ts)
		}
	}
	return nil
}

// HasToolset reports whether the named toolset is enabled.
func (c *Config) HasToolset(name string) bool {
	for _, ts := range c.Toolsets {
		if ts == name {
			return true
		}
	}
	return false
}

// ParseToolsets splits a comma-separated toolset list.
func ParseToolsets(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
