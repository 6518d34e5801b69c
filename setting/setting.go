package setting

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/ini.v1"

	"github.com/spektr-org/statchart/surface"
)

// ============================================================================
// SETTINGS — app.ini sections plus environment overrides
// ============================================================================
// A missing app.ini is not an error: every section has defaults. When
// [cache] ADAPTER is empty, staging and production use redis and every other
// APP_ENV uses the in-process cache.
// ============================================================================

// Server configures the HTTP listener.
type Server struct {
	HTTPAddr     string        `ini:"HTTP_ADDR"`
	ReadTimeout  time.Duration `ini:"READ_TIMEOUT"`
	WriteTimeout time.Duration `ini:"WRITE_TIMEOUT"`
}

// Upstream is the metadata API the browser pages read from.
type Upstream struct {
	URL     string        `ini:"URL"`
	Timeout time.Duration `ini:"TIMEOUT"`
}

// Cache configures the property-value cache.
type Cache struct {
	Adapter string        `ini:"ADAPTER"` // "memory" or "redis"
	Conn    string        `ini:"CONN"`    // redis URL
	TTL     time.Duration `ini:"ITEM_TTL"`
	Size    int           `ini:"SIZE"` // memory adapter entry limit
}

// Chart holds drawing defaults.
type Chart struct {
	FontSize      float64  `ini:"FONT_SIZE"`
	TickCount     int      `ini:"TICK_COUNT"`
	DefaultWidth  float64  `ini:"DEFAULT_WIDTH"`
	DefaultHeight float64  `ini:"DEFAULT_HEIGHT"`
	Palette       []string `ini:"PALETTE" delim:","`
}

// Log configures logrus.
type Log struct {
	Level  string `ini:"LEVEL"`
	Format string `ini:"FORMAT"` // "text" or "json"
}

// Settings is the whole configuration.
type Settings struct {
	AppEnv   string
	Server   Server
	Upstream Upstream
	Cache    Cache
	Chart    Chart
	Log      Log
}

// Default returns the built-in configuration.
func Default() *Settings {
	return &Settings{
		AppEnv: "development",
		Server: Server{
			HTTPAddr:     ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Upstream: Upstream{
			URL:     "https://api.datacommons.org",
			Timeout: 10 * time.Second,
		},
		Cache: Cache{
			TTL:  time.Hour,
			Size: 4096,
		},
		Chart: Chart{
			FontSize:      10,
			DefaultWidth:  350,
			DefaultHeight: 300,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path (missing files are ignored), then applies environment
// overrides.
func Load(path string) (*Settings, error) {
	var sources []interface{}
	if path != "" {
		sources = append(sources, path)
	}
	cfg, err := ini.LoadSources(loadOptions(true), []byte{}, sources...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fromFile(cfg, os.Getenv)
}

// LoadBytes reads an in-memory app.ini without consulting the environment.
func LoadBytes(data []byte) (*Settings, error) {
	cfg, err := ini.LoadSources(loadOptions(false), data)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return fromFile(cfg, func(string) string { return "" })
}

// loadOptions keeps '#' and ';' inside values so hex palette entries survive.
func loadOptions(loose bool) ini.LoadOptions {
	return ini.LoadOptions{Loose: loose, IgnoreInlineComment: true}
}

func fromFile(cfg *ini.File, getenv func(string) string) (*Settings, error) {
	s := Default()
	s.AppEnv = cfg.Section("").Key("APP_ENV").MustString(s.AppEnv)

	sections := []struct {
		name string
		dst  interface{}
	}{
		{"server", &s.Server},
		{"upstream", &s.Upstream},
		{"cache", &s.Cache},
		{"chart", &s.Chart},
		{"log", &s.Log},
	}
	for _, sec := range sections {
		if err := cfg.Section(sec.name).MapTo(sec.dst); err != nil {
			return nil, fmt.Errorf("failed to map [%s] settings: %w", sec.name, err)
		}
	}

	s.applyEnv(getenv)
	if err := s.finish(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyEnv(getenv func(string) string) {
	if v := getenv("APP_ENV"); v != "" {
		s.AppEnv = v
	}
	if v := getenv("STATCHART_HTTP_ADDR"); v != "" {
		s.Server.HTTPAddr = v
	}
	if v := getenv("STATCHART_UPSTREAM_URL"); v != "" {
		s.Upstream.URL = v
	}
	if v := getenv("STATCHART_REDIS_URL"); v != "" {
		s.Cache.Conn = v
	}
}

// finish fills derived defaults and validates enumerations.
func (s *Settings) finish() error {
	s.Upstream.URL = strings.TrimRight(s.Upstream.URL, "/")

	if s.Cache.Adapter == "" {
		s.Cache.Adapter = "memory"
		if s.IsDeployed() {
			s.Cache.Adapter = "redis"
		}
	}
	switch s.Cache.Adapter {
	case "memory":
	case "redis":
		if s.Cache.Conn == "" {
			s.Cache.Conn = "redis://127.0.0.1:6379/0"
		}
	default:
		return fmt.Errorf("unknown cache adapter: %s", s.Cache.Adapter)
	}

	for i, c := range s.Chart.Palette {
		c = strings.TrimSpace(c)
		if !surface.ValidColor(c) {
			return fmt.Errorf("invalid palette color: %q", c)
		}
		s.Chart.Palette[i] = c
	}

	switch s.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", s.Log.Format)
	}
	return nil
}

// IsDeployed reports whether the app runs in staging or production.
func (s *Settings) IsDeployed() bool {
	return s.AppEnv == "staging" || s.AppEnv == "production"
}
