package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Stub    StubConfig    `mapstructure:"stub"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// StubConfig configures the local development stub server.
type StubConfig struct {
	Port              int           `mapstructure:"port"`
	Database          string        `mapstructure:"database"`
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	BCryptCost        int           `mapstructure:"bcrypt_cost"`
	OpenAPIPath       string        `mapstructure:"openapi_path"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config purely from environment variables, used
// when no config file is present (CI, containers).
func LoadConfigFromEnv() *Config {
	timeout, _ := time.ParseDuration(getEnv("HRMS_API_TIMEOUT", "15s"))
	tokenTTL, _ := time.ParseDuration(getEnv("HRMS_STUB_TOKEN_TTL", "8h"))

	return &Config{
		API: APIConfig{
			BaseURL:   getEnv("HRMS_API_BASE_URL", "http://localhost:5000/api"),
			Timeout:   timeout,
			UserAgent: getEnv("HRMS_API_USER_AGENT", "hrms-client"),
		},
		Session: SessionConfig{
			Path: getEnv("HRMS_SESSION_PATH", DefaultSessionPath()),
		},
		Stub: StubConfig{
			Port:       getEnvAsInt("HRMS_STUB_PORT", 5000),
			Database:   getEnv("HRMS_STUB_DATABASE", "hrms-stub.db"),
			JWTSecret:  getEnv("HRMS_STUB_JWT_SECRET", "local-development-secret"),
			TokenTTL:   tokenTTL,
			BCryptCost: getEnvAsInt("HRMS_STUB_BCRYPT_COST", 10),
		},
		Logging: LoggingConfig{
			Level:  getEnv("HRMS_LOG_LEVEL", "info"),
			Format: getEnv("HRMS_LOG_FORMAT", "text"),
		},
	}
}

// DefaultSessionPath is where the persisted session record lives when the
// config does not override it.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hrms-session.json"
	}
	return filepath.Join(home, ".hrms", "session.json")
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.API.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("api config: %v", err))
	}

	if err := c.Session.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("session config: %v", err))
	}

	if err := c.Stub.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("stub config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %s: %w", c.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("base_url must be http or https, got %s", parsed.Scheme)
	}
	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	return nil
}

func (c *SessionConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (c *StubConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.BCryptCost != 0 && (c.BCryptCost < 4 || c.BCryptCost > 15) {
		return errors.New("bcrypt_cost must be between 4 and 15")
	}
	if c.ReadTimeout != 0 && c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	return nil
}

// DSN reports the stub database source and whether it points at postgres;
// anything that does not look like a postgres URL is treated as a sqlite path.
func (c *StubConfig) DSN() (source string, postgres bool) {
	src := c.Database
	if src == "" {
		src = "hrms-stub.db"
	}
	if strings.HasPrefix(src, "postgres://") || strings.HasPrefix(src, "postgresql://") {
		return src, true
	}
	return src, false
}
