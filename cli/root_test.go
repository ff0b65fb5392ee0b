package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/config"
	"github.com/eng-elias-owis/mcp-setup-guide/pkg/logger"
)

func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := RootCmd()
	require.NoError(t, cmd.PersistentFlags().Set("env-file", ""))
	require.NoError(t, cmd.PersistentFlags().Set("log-level", "disabled"))
	return cmd
}

func TestSetupGlobalConfig(t *testing.T) {
	t.Run("Should inject defaults into the context", func(t *testing.T) {
		cmd := newTestCmd(t)
		require.NoError(t, SetupGlobalConfig(cmd))
		cfg := config.FromContext(cmd.Context())
		assert.Equal(t, "simple-http-server", cfg.Server.Name)
		assert.Equal(t, "Simple-HTTP-MCP/1.0", cfg.HTTP.UserAgent)
		assert.Equal(t, 5, cfg.Server.Workers)
		assert.NotNil(t, logger.FromContext(cmd.Context()))
	})

	t.Run("Should let YAML override defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "server.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("http:\n  user_agent: yaml-agent/1\nserver:\n  workers: 3\n"), 0o600))
		cmd := newTestCmd(t)
		require.NoError(t, cmd.PersistentFlags().Set("config", cfgPath))
		require.NoError(t, SetupGlobalConfig(cmd))
		cfg := config.FromContext(cmd.Context())
		assert.Equal(t, "yaml-agent/1", cfg.HTTP.UserAgent)
		assert.Equal(t, 3, cfg.Server.Workers)
	})

	t.Run("Should let flags override environment", func(t *testing.T) {
		t.Setenv("HTTP_MCP_USER_AGENT", "env-agent/1")
		t.Setenv("HTTP_MCP_WORKERS", "7")
		cmd := newTestCmd(t)
		require.NoError(t, cmd.PersistentFlags().Set("user-agent", "flag-agent/1"))
		require.NoError(t, SetupGlobalConfig(cmd))
		cfg := config.FromContext(cmd.Context())
		assert.Equal(t, "flag-agent/1", cfg.HTTP.UserAgent)
		assert.Equal(t, 7, cfg.Server.Workers)
	})

	t.Run("Should map debug onto the log level", func(t *testing.T) {
		cmd := newTestCmd(t)
		require.NoError(t, cmd.PersistentFlags().Set("debug", "true"))
		require.NoError(t, SetupGlobalConfig(cmd))
		assert.Equal(t, "debug", config.FromContext(cmd.Context()).Log.Level)
	})

	t.Run("Should fail on invalid values", func(t *testing.T) {
		cmd := newTestCmd(t)
		require.NoError(t, cmd.PersistentFlags().Set("workers", "0"))
		err := SetupGlobalConfig(cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})

	t.Run("Should fail on a missing YAML file", func(t *testing.T) {
		cmd := newTestCmd(t)
		require.NoError(t, cmd.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")))
		assert.Error(t, SetupGlobalConfig(cmd))
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("Should load variables from the env file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_MCP_TEST_ENV_FILE=loaded\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("HTTP_MCP_TEST_ENV_FILE") })
		cmd := RootCmd()
		path, err := loadEnvFile(cmd)
		require.NoError(t, err)
		assert.Equal(t, ".env", filepath.Base(path))
		assert.Equal(t, "loaded", os.Getenv("HTTP_MCP_TEST_ENV_FILE"))
	})

	t.Run("Should ignore a missing env file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := loadEnvFile(RootCmd())
		assert.NoError(t, err)
	})

	t.Run("Should reject paths outside the working directory", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cmd := RootCmd()
		require.NoError(t, cmd.PersistentFlags().Set("env-file", "../outside.env"))
		_, err := loadEnvFile(cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside the working directory")
	})
}

func TestExtractCLIFlags(t *testing.T) {
	t.Run("Should include only changed flags", func(t *testing.T) {
		cmd := RootCmd()
		require.NoError(t, cmd.PersistentFlags().Set("workers", "9"))
		require.NoError(t, cmd.PersistentFlags().Set("log-json", "true"))
		flags := extractCLIFlags(cmd)
		assert.Equal(t, map[string]any{"server.workers": "9", "log.json": "true"}, flags)
	})
}

func TestVersionCmd(t *testing.T) {
	t.Run("Should print build information", func(t *testing.T) {
		cmd := RootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"version"})
		require.NoError(t, cmd.Execute())
		assert.True(t, strings.HasPrefix(out.String(), "version "))
		assert.Contains(t, out.String(), "commit: ")
	})
}

func TestServeCmd(t *testing.T) {
	t.Run("Should serve tools/list over the command streams", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cmd := RootCmd()
		var out bytes.Buffer
		cmd.SetIn(strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n"))
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--log-level", "disabled"})
		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), `"name":"http_request"`)
	})
}
