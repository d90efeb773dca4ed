package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/zksim/internal/formatter"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// DefaultConfigYAML returns a copy of the embedded default config YAML bytes.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default decodes the embedded default configuration.
func Default() (Config, error) {
	var cfg Config
	if len(embeddedDefaultConfig) == 0 {
		return cfg, fmt.Errorf("embedded default config is empty")
	}
	if err := yaml.Unmarshal(embeddedDefaultConfig, &cfg); err != nil {
		return cfg, fmt.Errorf("decode embedded default config: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults merged with the file at path. Keys absent from the
// file keep their default values. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if err := formatter.ValidateTreeStyle(c.Shell.TreeStyle); err != nil {
		return err
	}
	if c.Shell.ExportFormat != "" {
		if err := formatter.ValidateExportFormat(c.Shell.ExportFormat); err != nil {
			return err
		}
	}
	return nil
}
