// Package cli holds configuration shared by the stratify commands.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where commands look for the project configuration.
const DefaultConfigPath = ".stratify.yaml"

// Config represents the optional per-project configuration file.
type Config struct {
	// KeepAlwaysFalse disables the contradiction filter: strategies whose condition
	// conjunction can never hold are emitted instead of discarded.
	KeepAlwaysFalse bool `yaml:"keep_always_false"`
	// LogLevel selects the diagnostic verbosity: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Load reads the configuration at path. A missing file is not an error: the zero
// config applies (filtering on, info logging).
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
