// Package web serves the reader-facing site: a server-rendered article
// list and detail page backed by the news API.
package web

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"localnews/pkg/config"
)

// Config holds the web server settings.
type Config struct {
	// ListenAddr is the address the web server binds, e.g. ":3000".
	ListenAddr string `yaml:"listen_addr"`

	// APIBaseURL is the base URL of the news API.
	APIBaseURL string `yaml:"api_base_url"`

	// RequestTimeout bounds each API call made while rendering a page.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	Site SiteConfig `yaml:"site"`
}

// SiteConfig holds the branding shown in the page chrome.
type SiteConfig struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		ListenAddr:     ":3000",
		APIBaseURL:     "http://localhost:5000",
		RequestTimeout: 10 * time.Second,
		Site: SiteConfig{
			Name:    "Local News Network",
			Tagline: "Bringing you the latest from our community",
		},
	}
}

// LoadConfig builds the web configuration. A YAML file named by the
// WEB_CONFIG environment variable is applied over the defaults, then
// the WEB_PORT, API_URL and API_TIMEOUT variables override the file.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("WEB_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if port := config.GetEnvString("WEB_PORT", ""); port != "" {
		cfg.ListenAddr = ":" + port
	}
	cfg.APIBaseURL = config.GetEnvString("API_URL", cfg.APIBaseURL)
	cfg.RequestTimeout = config.GetEnvDuration("API_TIMEOUT", cfg.RequestTimeout)

	if cfg.ListenAddr == "" {
		return Config{}, fmt.Errorf("listen_addr must not be empty")
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("api_base_url must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("request_timeout must be positive")
	}
	return cfg, nil
}
