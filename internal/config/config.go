// Package config loads service configuration from defaults, an optional
// config.yaml and STRHELPERS_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "STRHELPERS"

// Config holds all configuration sections.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Helpers HelpersConfig `mapstructure:"helpers"`
	Logging LoggingConfig `mapstructure:"logging"`
	Storage StorageConfig `mapstructure:"storage"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
}

// HelpersConfig holds defaults applied when a request omits them.
type HelpersConfig struct {
	TruncateLimit int `mapstructure:"truncateLimit"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects the usage ledger backend.
// An empty Path keeps the ledger in memory.
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// TracingConfig holds OpenTelemetry export settings.
// An empty Endpoint disables span export.
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"serviceName"`
	Insecure    bool   `mapstructure:"insecure"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdownTimeout", 30*time.Second)
	v.SetDefault("server.readTimeout", 10*time.Second)
	v.SetDefault("server.writeTimeout", 10*time.Second)

	v.SetDefault("helpers.truncateLimit", 10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("storage.path", "")

	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.serviceName", "strhelpers")
	v.SetDefault("tracing.insecure", false)
}

// Load reads configuration from the current directory and the environment.
func Load() (*Config, error) {
	return LoadWithPath("")
}

// LoadWithPath reads configuration from the specified path or default locations.
// Environment variables use the prefix STRHELPERS_ with "." replaced by "_",
// e.g. STRHELPERS_SERVER_PORT.
func LoadWithPath(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv upper-cases keys, so camelCase keys need explicit snake_case names.
	_ = v.BindEnv("server.shutdownTimeout", envPrefix+"_SERVER_SHUTDOWN_TIMEOUT")
	_ = v.BindEnv("server.readTimeout", envPrefix+"_SERVER_READ_TIMEOUT")
	_ = v.BindEnv("server.writeTimeout", envPrefix+"_SERVER_WRITE_TIMEOUT")
	_ = v.BindEnv("helpers.truncateLimit", envPrefix+"_HELPERS_TRUNCATE_LIMIT")
	_ = v.BindEnv("tracing.serviceName", envPrefix+"_TRACING_SERVICE_NAME", "OTEL_SERVICE_NAME")
	// The standard OTel variable is honoured when the prefixed one is unset.
	_ = v.BindEnv("tracing.endpoint", envPrefix+"_TRACING_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	var errs []string

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		errs = append(errs, "server.port must be between 1 and 65535")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "server.shutdownTimeout must be positive")
	}
	if cfg.Helpers.TruncateLimit < 0 {
		errs = append(errs, "helpers.truncateLimit must not be negative")
	}

	if cfg.Tracing.Endpoint != "" && cfg.Tracing.ServiceName == "" {
		errs = append(errs, "tracing.serviceName must be set when tracing.endpoint is set")
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "logging.level must be one of debug, info, warn, error")
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, "logging.format must be text or json")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
