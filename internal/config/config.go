// Package config loads onechat settings.
//
// Sources are applied in order, later ones winning:
//
//  1. A YAML file, with ${VAR} references expanded from the environment
//  2. A .env file in the working directory (never overrides variables already set)
//  3. ONECHAT_* environment variables
//
// # Example Configuration
//
//	token: "${ONECHAT_TOKEN}"
//	default_to: "U1234"
//	default_bot_id: "B5678"
//	http:
//	  connect_timeout: 5s
//	  read_timeout: 15s
//	logging:
//	  level: info
//	  file: /var/log/onechat/onechat.log
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/keepmind9/onechat/internal/logger"
	"github.com/keepmind9/onechat/pkg/constants"
	"github.com/keepmind9/onechat/pkg/onechat"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from file (optional), .env and environment
func LoadConfig(configPath string) (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	var config Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		expandedData, err := expandEnv(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to expand environment variables: %w", err)
		}

		if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// DefaultLocations lists where FindConfigFile looks, in order
func DefaultLocations() []string {
	locations := []string{"onechat.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".config", "onechat", "config.yaml"))
	}
	return append(locations, "/etc/onechat/config.yaml")
}

// FindConfigFile returns the first existing default location, or "" if none exist
func FindConfigFile() string {
	for _, loc := range DefaultLocations() {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// expandEnv replaces ${VAR_NAME} patterns with environment variable values
func expandEnv(input string) (string, error) {
	var missingVars []string

	result := os.Expand(input, func(key string) string {
		if val := os.Getenv(key); val != "" {
			return val
		}
		missingVars = append(missingVars, key)
		return ""
	})

	if len(missingVars) > 0 {
		return "", fmt.Errorf("missing required environment variables: %s",
			strings.Join(missingVars, ", "))
	}

	return result, nil
}

// validateConfig fills defaults and rejects unusable settings
func validateConfig(config *Config) error {
	config.Token = onechat.NormalizeToken(config.Token)
	if config.Token == "" {
		return fmt.Errorf("token is required (set token in the config file or ONECHAT_TOKEN)")
	}

	if config.BaseURL == "" {
		config.BaseURL = constants.DefaultBaseURL
	}
	if !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https:// (got %q)", config.BaseURL)
	}

	if config.HTTP.ConnectTimeout == "" {
		config.HTTP.ConnectTimeout = constants.DefaultConnectTimeout.String()
	}
	if config.HTTP.ReadTimeout == "" {
		config.HTTP.ReadTimeout = constants.DefaultReadTimeout.String()
	}
	if _, err := parsePositiveDuration("http.connect_timeout", config.HTTP.ConnectTimeout); err != nil {
		return err
	}
	if _, err := parsePositiveDuration("http.read_timeout", config.HTTP.ReadTimeout); err != nil {
		return err
	}

	if config.Logging.Level == "" {
		config.Logging.Level = constants.DefaultLogLevel
	}
	if _, err := logrus.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level %q", config.Logging.Level)
	}
	switch strings.ToLower(config.Logging.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text (got %q)", config.Logging.Format)
	}
	if config.Logging.MaxSize == 0 {
		config.Logging.MaxSize = constants.DefaultLogMaxSize
	}
	if config.Logging.MaxBackups == 0 {
		config.Logging.MaxBackups = constants.DefaultLogMaxBackups
	}
	if config.Logging.MaxAge == 0 {
		config.Logging.MaxAge = constants.DefaultLogMaxAge
	}

	return nil
}

func parsePositiveDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive (got %v)", field, d)
	}
	return d, nil
}

// Timeouts returns the parsed connect and read timeouts
func (c *Config) Timeouts() (connect, read time.Duration) {
	connect, _ = time.ParseDuration(c.HTTP.ConnectTimeout)
	read, _ = time.ParseDuration(c.HTTP.ReadTimeout)
	return connect, read
}

// Defaults returns the recipient and bot defaults for a session
func (c *Config) Defaults() onechat.Defaults {
	return onechat.Defaults{To: c.DefaultTo, BotID: c.DefaultBotID}
}

// ClientOptions maps the configuration onto SDK options
func (c *Config) ClientOptions(l *logrus.Logger) []onechat.Option {
	connect, read := c.Timeouts()
	return []onechat.Option{
		onechat.WithBaseURL(c.BaseURL),
		onechat.WithTimeouts(connect, read),
		onechat.WithLogger(l),
	}
}

// LoggerConfig maps the logging section onto the logger package config
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:         c.Logging.Level,
		Format:        c.Logging.Format,
		File:          c.Logging.File,
		MaxSize:       c.Logging.MaxSize,
		MaxBackups:    c.Logging.MaxBackups,
		MaxAge:        c.Logging.MaxAge,
		Compress:      c.Logging.Compress,
		EnableConsole: c.Logging.EnableConsole,
	}
}
