package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the command tree. Running the root command serves the
// http_request tool over stdio.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "simple-http-mcp",
		Short:         "MCP server exposing an http_request tool over stdio",
		Long:          "Serve the http_request tool to an MCP host over stdin/stdout. Logs are written to stderr.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return SetupGlobalConfig(cmd)
		},
		RunE: handleServeCmd,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML configuration file")
	flags.String("env-file", ".env", "Path to the environment variables file")

	// Logging configuration flags
	flags.String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	flags.Bool("log-json", false, "Output logs in JSON format")
	flags.Bool("log-source", false, "Include source file and line in logs")
	flags.Bool("debug", false, "Enable debug mode (sets log level to debug)")

	// Outbound HTTP flags
	flags.String("user-agent", "Simple-HTTP-MCP/1.0", "Default User-Agent for outbound requests")
	flags.Bool("http-debug", false, "Log outbound request and response dumps")

	// Server flags
	flags.Int("workers", 5, "Number of concurrent tool call workers")
	flags.Int("queue-size", 100, "Maximum number of queued tool calls")

	root.AddCommand(
		VersionCmd(),
	)

	return root
}
