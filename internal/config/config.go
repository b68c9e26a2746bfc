package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default values used when the matching environment variable is not set.
const (
	DefaultServerAddr           = ":8080"
	DefaultAPIBaseURL           = "http://127.0.0.1:5000"
	DefaultBackendTimeout       = 10 * time.Second
	DefaultSidebarBreakpoint    = 768
	DefaultLogoutBannerDuration = 2 * time.Second
	DefaultTracingServiceName   = "fieldbase-admin"
	DefaultTracingZipkinURL     = "http://localhost:9411/api/v2/spans"
)

// ErrMissingSessionSecret is returned when SESSION_SECRET is not set.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET is not set")

// Provider is the read-only view of the configuration handed to services.
type Provider interface {
	GetAppEnv() string
	GetServerAddr() string
	GetAPIBaseURL() string
	GetBackendTimeout() time.Duration
	GetSessionSecret() string
	GetSidebarBreakpoint() int
	GetLogoutBannerDuration() time.Duration
	GetNavigationFile() string
	GetTracing() Tracing
}

// Tracing holds the OpenTelemetry exporter settings.
type Tracing struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv               string
	ServerAddr           string
	APIBaseURL           string
	BackendTimeout       time.Duration
	SessionSecret        string
	SidebarBreakpoint    int
	LogoutBannerDuration time.Duration
	NavigationFile       string
	Tracing              Tracing
}

var _ Provider = (*Config)(nil)

// New loads configuration from the .env file and the environment.
// It exits the process when the configuration is unusable.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Load builds a Config from environment variables without touching .env files.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:               getEnv("APP_ENV", "development"),
		ServerAddr:           getEnv("SERVER_ADDR", DefaultServerAddr),
		APIBaseURL:           getEnv("API_BASE_URL", DefaultAPIBaseURL),
		SessionSecret:        os.Getenv("SESSION_SECRET"),
		NavigationFile:       os.Getenv("NAV_FILE"),
		BackendTimeout:       DefaultBackendTimeout,
		SidebarBreakpoint:    DefaultSidebarBreakpoint,
		LogoutBannerDuration: DefaultLogoutBannerDuration,
		Tracing: Tracing{
			ServiceName: getEnv("TRACING_SERVICE_NAME", DefaultTracingServiceName),
			ZipkinURL:   getEnv("TRACING_ZIPKIN_URL", DefaultTracingZipkinURL),
		},
	}

	var err error
	if cfg.BackendTimeout, err = getDuration("BACKEND_TIMEOUT", DefaultBackendTimeout); err != nil {
		return nil, err
	}
	if cfg.LogoutBannerDuration, err = getDuration("LOGOUT_BANNER_DURATION", DefaultLogoutBannerDuration); err != nil {
		return nil, err
	}
	if cfg.SidebarBreakpoint, err = getInt("SIDEBAR_BREAKPOINT", DefaultSidebarBreakpoint); err != nil {
		return nil, err
	}
	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("TRACING_ENABLED: %w", err)
		}
		cfg.Tracing.Enabled = enabled
	}

	if cfg.SessionSecret == "" {
		return nil, ErrMissingSessionSecret
	}
	if cfg.SidebarBreakpoint <= 0 {
		return nil, fmt.Errorf("SIDEBAR_BREAKPOINT must be positive, got %d", cfg.SidebarBreakpoint)
	}

	return cfg, nil
}

func (c *Config) GetAppEnv() string                      { return c.AppEnv }
func (c *Config) GetServerAddr() string                  { return c.ServerAddr }
func (c *Config) GetAPIBaseURL() string                  { return c.APIBaseURL }
func (c *Config) GetBackendTimeout() time.Duration       { return c.BackendTimeout }
func (c *Config) GetSessionSecret() string               { return c.SessionSecret }
func (c *Config) GetSidebarBreakpoint() int              { return c.SidebarBreakpoint }
func (c *Config) GetLogoutBannerDuration() time.Duration { return c.LogoutBannerDuration }
func (c *Config) GetNavigationFile() string              { return c.NavigationFile }
func (c *Config) GetTracing() Tracing                    { return c.Tracing }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
