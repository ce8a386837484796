package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// API server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"3002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	Website   WebsiteConfig
	Blog      BlogConfig
	Chat      ChatConfig
	Site      SiteConfig
	MCP       MCPConfig
	Scheduler SchedulerConfig
	Otel      OtelConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Address returns host:port for the API server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// WebsiteConfig holds settings for the HTML site binary.
type WebsiteConfig struct {
	Port string `env:"WEBSITE_PORT" envDefault:"4002"`
	// StaticDir serves assets from disk instead of the embedded copy.
	StaticDir string `env:"WEBSITE_STATIC_DIR" envDefault:""`
	// ThemeCookie stores the visitor's theme between page loads.
	ThemeCookie   string `env:"WEBSITE_THEME_COOKIE" envDefault:"site_theme"`
	VisitorCookie string `env:"WEBSITE_VISITOR_COOKIE" envDefault:"site_visitor"`
}

// Addr returns the listen address, adding the leading colon if missing.
func (w WebsiteConfig) Addr() string {
	if w.Port == "" {
		return ":4002"
	}
	if w.Port[0] != ':' {
		return ":" + w.Port
	}
	return w.Port
}

// BlogConfig controls where posts are read from.
type BlogConfig struct {
	Dir             string        `env:"BLOG_DIR" envDefault:"content/blog"`
	RefreshInterval time.Duration `env:"BLOG_REFRESH_INTERVAL" envDefault:"5m"`
	SearchLimit     int           `env:"BLOG_SEARCH_LIMIT" envDefault:"10"`
}

// ChatConfig controls the chat command endpoint.
type ChatConfig struct {
	MaxMessageLength int `env:"CHAT_MAX_MESSAGE_LENGTH" envDefault:"500"`
	// RateLimit is requests per second per client IP; 0 disables limiting.
	RateLimit float64 `env:"CHAT_RATE_LIMIT" envDefault:"5"`
	RateBurst int     `env:"CHAT_RATE_BURST" envDefault:"10"`
}

// RateLimited reports whether per-IP limiting is on.
func (c ChatConfig) RateLimited() bool {
	return c.RateLimit > 0
}

// SiteConfig holds page and experiment settings.
type SiteConfig struct {
	BaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:4002"`
	// HeroVariant forces one hero variant for every visitor when set.
	HeroVariant string `env:"SITE_HERO_VARIANT" envDefault:""`
}

// MCPConfig toggles the MCP tool endpoint.
type MCPConfig struct {
	Enabled bool   `env:"MCP_ENABLED" envDefault:"true"`
	Path    string `env:"MCP_PATH" envDefault:"/mcp"`
}

// SchedulerConfig controls background tasks.
type SchedulerConfig struct {
	Enabled bool `env:"SCHEDULER_ENABLED" envDefault:"true"`
	// LimiterSweepInterval is how often idle chat rate limiters are dropped.
	LimiterSweepInterval time.Duration `env:"LIMITER_SWEEP_INTERVAL" envDefault:"10m"`
	LimiterIdle          time.Duration `env:"LIMITER_IDLE" envDefault:"30m"`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("blog_dir", cfg.Blog.Dir),
		slog.Bool("mcp_enabled", cfg.MCP.Enabled),
	)

	return cfg, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Blog.Dir == "" {
		return fmt.Errorf("BLOG_DIR must not be empty")
	}
	if c.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("CHAT_MAX_MESSAGE_LENGTH must be positive, got %d", c.Chat.MaxMessageLength)
	}
	if c.Chat.RateLimit < 0 {
		return fmt.Errorf("CHAT_RATE_LIMIT must not be negative")
	}
	if c.Scheduler.Enabled && (c.Blog.RefreshInterval <= 0 || c.Scheduler.LimiterSweepInterval <= 0) {
		return fmt.Errorf("scheduler intervals must be positive")
	}
	if c.Blog.SearchLimit <= 0 {
		return fmt.Errorf("BLOG_SEARCH_LIMIT must be positive, got %d", c.Blog.SearchLimit)
	}
	return nil
}
