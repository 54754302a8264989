package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Service names
const (
	KoooraService     = "kooora-service"
	LiveSoccerService = "livesoccer-service"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// ProviderConfig holds the upstream provider client settings
type ProviderConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	APIKey    string        `yaml:"api_key"`
	APISecret string        `yaml:"api_secret"`
}

// Config holds all configuration for one service
type Config struct {
	Service  string         `yaml:"-"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Provider ProviderConfig `yaml:"provider"`

	// SwallowUpstreamErrors answers provider failures with an empty result
	// instead of 502
	SwallowUpstreamErrors bool `yaml:"swallow_upstream_errors"`
}

// Defaults returns the built-in configuration of a service
func Defaults(service string) (*Config, error) {
	cfg := &Config{
		Service: service,
		Server: ServerConfig{
			CORSOrigins:    []string{"*"},
			RequestTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Provider: ProviderConfig{
			Timeout: 10 * time.Second,
		},
	}

	switch service {
	case KoooraService:
		cfg.Server.Addr = "0.0.0.0:5000"
		cfg.Provider.BaseURL = "https://www.kooora.com"
	case LiveSoccerService:
		cfg.Server.Addr = "0.0.0.0:5001"
		cfg.Provider.BaseURL = "https://livescore-api.com/api-client"
	default:
		return nil, fmt.Errorf("unknown service %q", service)
	}

	return cfg, nil
}

// Load builds the configuration of a service from its defaults, the YAML
// file at path (skipped when path is empty) and environment variables, in
// that order of precedence.
func Load(service, path string) (*Config, error) {
	cfg, err := Defaults(service)
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail at startup
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("provider.timeout must be positive")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Server.Addr = getEnv("SERVER_ADDR", cfg.Server.Addr)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = splitList(origins)
	}

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)

	cfg.Provider.BaseURL = getEnv("PROVIDER_BASE_URL", cfg.Provider.BaseURL)
	cfg.Provider.UserAgent = getEnv("PROVIDER_USER_AGENT", cfg.Provider.UserAgent)
	cfg.Provider.APIKey = getEnv("PROVIDER_API_KEY", cfg.Provider.APIKey)
	cfg.Provider.APISecret = getEnv("PROVIDER_API_SECRET", cfg.Provider.APISecret)

	var err error
	if cfg.Server.RequestTimeout, err = getDurationEnv("REQUEST_TIMEOUT", cfg.Server.RequestTimeout); err != nil {
		return err
	}
	if cfg.Provider.Timeout, err = getDurationEnv("PROVIDER_TIMEOUT", cfg.Provider.Timeout); err != nil {
		return err
	}
	if cfg.SwallowUpstreamErrors, err = getBoolEnv("SWALLOW_UPSTREAM_ERRORS", cfg.SwallowUpstreamErrors); err != nil {
		return err
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
