package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = []struct {
	flagName string
	key      string
}{
	{"log-level", "log.level"},
	{"log-json", "log.json"},
	{"log-source", "log.source"},
	{"user-agent", "http.user_agent"},
	{"http-debug", "http.debug"},
	{"workers", "server.workers"},
	{"queue-size", "server.queue_size"},
}

// extractCLIFlags collects the flags explicitly changed by the user into a
// map keyed by configuration path. Values stay in their string form and are
// decoded by the config loader.
func extractCLIFlags(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)
	for _, def := range flagKeys {
		if f, ok := changedFlag(cmd, def.flagName); ok {
			flags[def.key] = f.Value.String()
		}
	}
	if f, ok := changedFlag(cmd, "debug"); ok && f.Value.String() == "true" {
		flags["log.level"] = "debug"
	}
	return flags
}

// changedFlag looks a flag up among local and persistent flags and reports
// whether the user set it.
func changedFlag(cmd *cobra.Command, name string) (*pflag.Flag, bool) {
	f := cmd.Flag(name)
	return f, f != nil && f.Changed
}

// flagString returns the string value of a local or persistent flag.
func flagString(cmd *cobra.Command, name string) (string, error) {
	f := cmd.Flag(name)
	if f == nil {
		return "", fmt.Errorf("flag %q is not defined", name)
	}
	return f.Value.String(), nil
}

// loadEnvFile loads environment variables from the env-file flag. A missing
// file is not an error; a path outside the working directory is.
func loadEnvFile(cmd *cobra.Command) (string, error) {
	envFile, err := flagString(cmd, "env-file")
	if err != nil {
		return "", fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile == "" {
		return "", nil
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	if !filepath.IsAbs(envFile) {
		envFile = filepath.Join(pwd, envFile)
	}
	absPath, err := filepath.Abs(filepath.Clean(envFile))
	if err != nil {
		return "", fmt.Errorf("failed to resolve env file path: %w", err)
	}
	if !isPathWithinDirectory(absPath, pwd) {
		return "", fmt.Errorf("env file path '%s' is outside the working directory", envFile)
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return absPath, nil
		}
		return "", fmt.Errorf("failed to stat env file: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return "", fmt.Errorf("env file path '%s' is not a regular file", envFile)
	}
	if err := godotenv.Load(absPath); err != nil {
		return "", fmt.Errorf("failed to load env file %s: %w", absPath, err)
	}
	return absPath, nil
}

func isPathWithinDirectory(path, dir string) bool {
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return false
	}
	if !strings.HasSuffix(absDir, string(filepath.Separator)) {
		absDir += string(filepath.Separator)
	}
	return strings.HasPrefix(absPath, absDir) || absPath == strings.TrimSuffix(absDir, string(filepath.Separator))
}
