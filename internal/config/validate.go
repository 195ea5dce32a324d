package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration
// and normalizes derived values (trailing slash on the base URL, "~" in the
// session path). It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Backend.validate(); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		c.Export.Dir = "."
	}
	return nil
}

func (b *BackendConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(b.BaseURL))
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", b.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url must include a host (got %q)", b.BaseURL)
	}
	b.BaseURL = strings.TrimRight(u.String(), "/")

	if b.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %v)", b.Timeout)
	}
	if b.RateLimit < 0 {
		return fmt.Errorf("rate_limit must be >= 0 (got %v)", b.RateLimit)
	}
	if b.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be >= 1 (got %d)", b.RateBurst)
	}
	return nil
}

func (s *SessionConfig) validate() error {
	if strings.TrimSpace(s.CSRFCookie) == "" {
		return fmt.Errorf("csrf_cookie is required")
	}
	if strings.TrimSpace(s.CSRFHeader) == "" {
		return fmt.Errorf("csrf_header is required")
	}
	path, err := ExpandHome(strings.TrimSpace(s.Path))
	if err != nil {
		return fmt.Errorf("path: %w", err)
	}
	if path == "" {
		return fmt.Errorf("path is required")
	}
	s.Path = path
	return nil
}

// ExpandHome replaces a leading "~" with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
