package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	t.Run("Should describe the simple HTTP server", func(t *testing.T) {
		cfg := Default()

		assert.Equal(t, "simple-http-server", cfg.Server.Name)
		assert.Equal(t, "1.0.0", cfg.Server.Version)
		assert.Equal(t, "Simple-HTTP-MCP/1.0", cfg.HTTP.UserAgent)
		assert.Equal(t, "info", cfg.Log.Level)
	})
}

func TestGenerateEnvMappings(t *testing.T) {
	t.Run("Should map env tags to dotted config paths", func(t *testing.T) {
		mappings := GenerateEnvToConfigMap()

		assert.Equal(t, "http.user_agent", mappings["HTTP_MCP_USER_AGENT"])
		assert.Equal(t, "server.queue_size", mappings["HTTP_MCP_QUEUE_SIZE"])
		assert.Equal(t, "log.level", mappings["HTTP_MCP_LOG_LEVEL"])
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the stored configuration", func(t *testing.T) {
		cfg := Default()
		cfg.HTTP.UserAgent = "stored"

		got := FromContext(ContextWithConfig(t.Context(), cfg))

		assert.Same(t, cfg, got)
	})

	t.Run("Should fall back to defaults", func(t *testing.T) {
		assert.Equal(t, Default(), FromContext(t.Context()))
	})
}
