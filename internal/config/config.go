package config

import "time"

// Config is the root application configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Session SessionConfig `yaml:"session"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

// BackendConfig holds settings for the Minerva REST backend.
type BackendConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"BACKEND_BASE_URL"   env-default:"http://127.0.0.1:8000"`
	Timeout   time.Duration `yaml:"timeout"    env:"BACKEND_TIMEOUT"    env-default:"0s"`
	RateLimit float64       `yaml:"rate_limit" env:"BACKEND_RATE_LIMIT" env-default:"0"`
	RateBurst int           `yaml:"rate_burst" env:"BACKEND_RATE_BURST" env-default:"1"`
}

// SessionConfig describes where session cookies live and how the
// anti-forgery token is read and sent.
type SessionConfig struct {
	Path       string `yaml:"path"        env:"SESSION_PATH"        env-default:"~/.config/minervactl/session.json"`
	CSRFCookie string `yaml:"csrf_cookie" env:"SESSION_CSRF_COOKIE" env-default:"csrftoken"`
	CSRFHeader string `yaml:"csrf_header" env:"SESSION_CSRF_HEADER" env-default:"X-CSRFToken"`
}

// ExportConfig holds settings for activity report downloads.
type ExportConfig struct {
	Dir string `yaml:"dir" env:"EXPORT_DIR" env-default:"."`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
