package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/knadh/koanf/providers/env/v2"
)

// envProvider reads the environment variables declared through `env` tags.
type envProvider struct {
	environ func() []string
}

// NewEnvProvider creates a source backed by the process environment.
func NewEnvProvider() Source {
	return &envProvider{environ: os.Environ}
}

func (e *envProvider) Load() (map[string]any, error) {
	envToPath := GenerateEnvToConfigMap()
	provider := env.Provider(".", env.Opt{
		EnvironFunc: e.environ,
		TransformFunc: func(key, value string) (string, any) {
			if path, ok := envToPath[key]; ok {
				return path, value
			}
			return "", nil
		},
	})
	data, err := provider.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return data, nil
}

func (e *envProvider) Type() SourceType {
	return SourceEnv
}

// cliProvider turns explicitly set command line flags into configuration.
type cliProvider struct {
	flags map[string]any
}

// NewCLIProvider creates a source from flag values keyed by config path
// (e.g. "log.level").
func NewCLIProvider(flags map[string]any) Source {
	return &cliProvider{flags: flags}
}

func (c *cliProvider) Load() (map[string]any, error) {
	result := make(map[string]any)
	for path, value := range c.flags {
		if err := setNested(result, path, value); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (c *cliProvider) Type() SourceType {
	return SourceCLI
}

func setNested(m map[string]any, path string, value any) error {
	parts := strings.Split(path, ".")
	current := m
	for i, part := range parts {
		if part == "" {
			return fmt.Errorf("invalid config path %q", path)
		}
		if i == len(parts)-1 {
			current[part] = value
			return nil
		}
		next, exists := current[part]
		if !exists {
			child := make(map[string]any)
			current[part] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("config path %q conflicts with a non-map value at %q", path, part)
		}
		current = child
	}
	return nil
}

// yamlProvider reads a YAML configuration file.
type yamlProvider struct {
	path string
}

// NewYAMLProvider creates a source backed by the YAML file at path.
func NewYAMLProvider(path string) Source {
	return &yamlProvider{path: path}
}

func (y *yamlProvider) Load() (map[string]any, error) {
	data, err := os.ReadFile(y.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", y.path, err)
	}
	var config map[string]any
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", y.path, err)
	}
	return filterNilValues(config), nil
}

func (y *yamlProvider) Type() SourceType {
	return SourceYAML
}

// filterNilValues drops keys left empty in YAML so they don't override defaults.
func filterNilValues(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			result[k] = filterNilValues(nested)
			continue
		}
		result[k] = v
	}
	return result
}
