package web

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ListenAddr != ":3000" {
		t.Errorf("ListenAddr = %q, want :3000", cfg.ListenAddr)
	}
	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Errorf("APIBaseURL = %q, want http://localhost:5000", cfg.APIBaseURL)
	}
	if cfg.Site.Name != "Local News Network" {
		t.Errorf("Site.Name = %q", cfg.Site.Name)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web.yaml")
	data := []byte("listen_addr: \":8081\"\napi_base_url: \"http://api.internal:5000\"\nrequest_timeout: 5s\nsite:\n  name: Test Gazette\n  tagline: Testing the news\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("WEB_CONFIG", path)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ListenAddr != ":8081" {
		t.Errorf("ListenAddr = %q, want :8081", cfg.ListenAddr)
	}
	if cfg.APIBaseURL != "http://api.internal:5000" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Site.Name != "Test Gazette" {
		t.Errorf("Site.Name = %q, want Test Gazette", cfg.Site.Name)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("WEB_PORT", "4000")
	t.Setenv("API_URL", "http://other:5000")
	t.Setenv("API_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.ListenAddr != ":4000" {
		t.Errorf("ListenAddr = %q, want :4000", cfg.ListenAddr)
	}
	if cfg.APIBaseURL != "http://other:5000" {
		t.Errorf("APIBaseURL = %q, want http://other:5000", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("RequestTimeout = %v, want 2s", cfg.RequestTimeout)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("WEB_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() error = nil, want read failure")
	}
}
