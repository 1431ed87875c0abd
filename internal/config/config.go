package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultHandSize is used when no hand size has been configured
const DefaultHandSize = 5

// Config represents the application configuration
type Config struct {
	HandSize int   `toml:"hand_size"`
	Color    bool  `toml:"color"`
	Seed     int64 `toml:"seed"` // 0 means a random shuffle
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		HandSize: DefaultHandSize,
		Color:    true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "dealer", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	config, err := readConfig()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", GetConfigFilePath(), err)
	}

	return config, nil
}

// readConfig decodes the config file without checking its values, so a bad
// setting can still be overwritten.
func readConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := config.Save(); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return config, nil
}

// Validate checks the configured values are usable
func (c *Config) Validate() error {
	if c.HandSize < 1 || c.HandSize > 52 {
		return fmt.Errorf("hand_size must be between 1 and 52, got %d", c.HandSize)
	}
	return nil
}

// Save writes the config to the config file path
func (c *Config) Save() error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetHandSize sets the default hand size in the config
func SetHandSize(n int) error {
	config, err := readConfig()
	if err != nil {
		return err
	}

	config.HandSize = n
	if err := config.Validate(); err != nil {
		return err
	}

	return config.Save()
}
