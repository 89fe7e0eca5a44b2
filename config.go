package pubindex

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/eringen/pubindex/page"
)

// SiteConfig holds all configuration for a pubindex site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Blog")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	Addr      string `mapstructure:"addr"`       // Listen address (default ":3000")
	StaticDir string `mapstructure:"static_dir"` // User static assets (default "public")

	IndexURL     string        `mapstructure:"index_url"`     // index.json location (default "http://localhost:8080/index.json")
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"` // Index fetch timeout (default 15s)

	LoadLimit  int           `mapstructure:"load_limit"`  // Page loads per IP per window, 0 disables (LoadConfig default 120)
	LoadWindow time.Duration `mapstructure:"load_window"` // Rate limit window (default 1m)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.IndexURL == "" {
		c.IndexURL = "http://localhost:8080/index.json"
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.LoadWindow == 0 {
		c.LoadWindow = time.Minute
	}
}

// LoadConfig reads configuration from path (or ./pubindex.toml when empty)
// and PUBINDEX_* environment variables. A missing config file is not an
// error; defaults fill every unset field.
func LoadConfig(path string) (SiteConfig, error) {
	v := viper.New()

	v.SetDefault("name", "Blog")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("description", "")
	v.SetDefault("author", "")
	v.SetDefault("addr", ":3000")
	v.SetDefault("static_dir", "public")
	v.SetDefault("index_url", "http://localhost:8080/index.json")
	v.SetDefault("fetch_timeout", 15*time.Second)
	v.SetDefault("load_limit", 120)
	v.SetDefault("load_window", time.Minute)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pubindex")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PUBINDEX")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return SiteConfig{}, fmt.Errorf("pubindex: reading config: %w", err)
		}
	}

	var cfg SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("pubindex: unmarshaling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are installed.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLoader replaces the HTTP index loader, e.g. to read a local snapshot.
func WithLoader(l page.Loader) Option {
	return func(a *App) {
		a.Loader = l
	}
}
