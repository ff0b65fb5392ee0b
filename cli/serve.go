package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/config"
	"github.com/eng-elias-owis/mcp-setup-guide/pkg/gateway"
	"github.com/eng-elias-owis/mcp-setup-guide/pkg/logger"
	"github.com/eng-elias-owis/mcp-setup-guide/pkg/transport"
)

func handleServeCmd(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.FromContext(ctx)
	log := logger.FromContext(ctx)

	client := transport.NewResty(&transport.Config{Debug: cfg.HTTP.Debug}, log)
	gw := gateway.New(gateway.DefaultCatalog(), client, gateway.WithUserAgent(cfg.HTTP.UserAgent))
	serverCfg := &gateway.ServerConfig{
		Name:      cfg.Server.Name,
		Version:   cfg.Server.Version,
		Workers:   cfg.Server.Workers,
		QueueSize: cfg.Server.QueueSize,
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		log.Warn("stdin is a terminal; expecting newline-delimited JSON-RPC messages from an MCP host")
	}
	err := gateway.Serve(ctx, gateway.NewMCPServer(gw, serverCfg), serverCfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("MCP server stopped", "error", err)
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	log.Info("MCP server stopped")
	return nil
}
