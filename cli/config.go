package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/config"
	"github.com/eng-elias-owis/mcp-setup-guide/pkg/logger"
)

// SetupGlobalConfig loads the env file, merges every configuration source
// and stores the resulting config and logger in the command context.
func SetupGlobalConfig(cmd *cobra.Command) error {
	if _, err := loadEnvFile(cmd); err != nil {
		return err
	}
	sources, err := configSources(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.NewLoader().Load(ctx, sources...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log := logger.SetupLogger(level, cfg.Log.JSON, cfg.Log.Source)
	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)
	log.Debug("Configuration loaded",
		"server", cfg.Server.Name,
		"workers", cfg.Server.Workers,
		"user_agent", cfg.HTTP.UserAgent,
	)
	return nil
}

// configSources orders the sources by precedence: YAML file, environment,
// then command line flags.
func configSources(cmd *cobra.Command) ([]config.Source, error) {
	var sources []config.Source
	path, err := flagString(cmd, "config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		sources = append(sources, config.NewYAMLProvider(path))
	}
	sources = append(sources,
		config.NewEnvProvider(),
		config.NewCLIProvider(extractCLIFlags(cmd)),
	)
	return sources, nil
}
