package config

import (
	"fmt"
	"os"

	"github.com/naoina/toml"
)

// LoadConfigFile reads a TOML config file on top of NewDefaultRelayerConfig.
// The result is not validated; flags are usually applied before calling Validate.
func LoadConfigFile(path string) (*RelayerConfig, error) {
	cfg := NewDefaultRelayerConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return cfg, nil
}
