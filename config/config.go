package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Default external references used when the environment does not override them
const (
	DefaultSheetURL        = "https://docs.google.com/spreadsheets/d/14C-BtunMb82fYNwjsulbyqLgBFwrXbrzFh2XCdevvoM/edit?usp=sharing"
	DefaultShareURL        = "https://drive.google.com/drive/folders/1TtK0fnadxl3r1-8iYlv2GFf5LgdKxmID?usp=sharing"
	DefaultFallbackBaseURL = "http://127.0.0.1:5000"
	DefaultPort            = "8080"
	DefaultHTTPTimeout     = 10 * time.Second
)

// Config holds the service settings read from the environment
type Config struct {
	Port            string
	PublicBaseURL   string // origin the loader and resolver treat as "same origin"
	FallbackBaseURL string
	SheetURL        string
	ShareURL        string
	HTTPTimeout     time.Duration
	CredentialsPath string // Service Account JSON; Drive and Sheets API are disabled when empty
	ChromePath      string
	ProxyPhotos     bool // serve Drive photos through /catalog/photos/thumb
	LogLevel        string
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return LoadFromEnv(os.Getenv)
}

// LoadFromEnv reads the configuration through getenv
func LoadFromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	// PORT from Render/Cloud Run doesn't include the leading colon, but tolerate it
	port := strings.TrimPrefix(get("PORT", DefaultPort), ":")

	cfg := &Config{
		Port:            port,
		PublicBaseURL:   strings.TrimRight(get("PUBLIC_BASE_URL", "http://127.0.0.1:"+port), "/"),
		FallbackBaseURL: strings.TrimRight(get("FALLBACK_BASE_URL", DefaultFallbackBaseURL), "/"),
		SheetURL:        get("CATALOG_SHEET_URL", DefaultSheetURL),
		ShareURL:        get("CATALOG_SHARE_URL", DefaultShareURL),
		HTTPTimeout:     DefaultHTTPTimeout,
		CredentialsPath: get("GOOGLE_APPLICATION_CREDENTIALS", ""),
		ChromePath:      get("CHROME_PATH", ""),
		ProxyPhotos:     true,
		LogLevel:        get("LOG_LEVEL", "info"),
	}

	if raw := get("HTTP_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: must be a positive duration", raw)
		}
		cfg.HTTPTimeout = d
	}

	switch strings.ToLower(get("PROXY_PHOTOS", "true")) {
	case "true", "1", "yes":
		cfg.ProxyPhotos = true
	case "false", "0", "no":
		cfg.ProxyPhotos = false
	default:
		return nil, fmt.Errorf("invalid PROXY_PHOTOS %q: expected true or false", getenv("PROXY_PHOTOS"))
	}

	return cfg, nil
}

// Addr is the listen address; 0.0.0.0 accepts connections from all interfaces (Docker/Render)
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}
