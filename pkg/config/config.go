package config

import "context"

// Config represents the complete configuration of the HTTP tool server.
type Config struct {
	Server ServerConfig `koanf:"server" validate:"required"`
	HTTP   HTTPConfig   `koanf:"http"   validate:"required"`
	Log    LogConfig    `koanf:"log"    validate:"required"`
}

// ServerConfig describes how the server announces itself to MCP hosts and
// how many tool calls the stdio transport processes concurrently.
type ServerConfig struct {
	Name      string `koanf:"name"       validate:"required" env:"HTTP_MCP_SERVER_NAME"`
	Version   string `koanf:"version"    validate:"required" env:"HTTP_MCP_SERVER_VERSION"`
	Workers   int    `koanf:"workers"    validate:"min=1,max=100"    env:"HTTP_MCP_WORKERS"`
	QueueSize int    `koanf:"queue_size" validate:"min=1,max=10000"  env:"HTTP_MCP_QUEUE_SIZE"`
}

// HTTPConfig contains outbound request settings.
type HTTPConfig struct {
	UserAgent string `koanf:"user_agent" validate:"required" env:"HTTP_MCP_USER_AGENT"`
	Debug     bool   `koanf:"debug"                          env:"HTTP_MCP_HTTP_DEBUG"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error disabled" env:"HTTP_MCP_LOG_LEVEL"`
	JSON   bool   `koanf:"json"                                                   env:"HTTP_MCP_LOG_JSON"`
	Source bool   `koanf:"source"                                                 env:"HTTP_MCP_LOG_SOURCE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:      "simple-http-server",
			Version:   "1.0.0",
			Workers:   5,
			QueueSize: 100,
		},
		HTTP: HTTPConfig{
			UserAgent: "Simple-HTTP-MCP/1.0",
			Debug:     false,
		},
		Log: LogConfig{
			Level:  "info",
			JSON:   false,
			Source: false,
		},
	}
}

// SourceType identifies where a configuration value came from.
type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceYAML    SourceType = "yaml"
	SourceEnv     SourceType = "env"
	SourceCLI     SourceType = "cli"
)

// Source defines the interface for configuration sources.
type Source interface {
	// Load reads configuration from the source as a nested map.
	Load() (map[string]any, error)
	// Type returns the type of this source.
	Type() SourceType
}

type ContextKey string

const configCtxKey ContextKey = "config"

// ContextWithConfig stores cfg in ctx.
func ContextWithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configCtxKey, cfg)
}

// FromContext returns the configuration stored in ctx, or the defaults.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configCtxKey).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	return Default()
}
