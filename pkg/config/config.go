// Package config loads and saves the persistctl configuration file.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration.
type Config struct {
	// BackingPath is the image file standing in for the device's backup RAM.
	BackingPath string `yaml:"backing_path"`

	// UseMmap memory-maps the backing file instead of using read/write.
	UseMmap bool `yaml:"use_mmap"`

	// ArchiveDir is the snapshot archive directory.
	ArchiveDir string `yaml:"archive_dir"`

	// HTTP server settings for `persistctl serve`.
	Bind   string `yaml:"bind"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		BackingPath: "./backup.img",
		UseMmap:     true,
		ArchiveDir:  "./archive",
		Bind:        "127.0.0.1",
		Port:        8420,
		APIKey:      "auto",
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration with restrictive permissions; the file
// carries the API key.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateAPIKey generates a cryptographically secure random key.
func GenerateAPIKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a fresh configuration with a generated API key and
// saves it to the given path.
func BootstrapConfig(configPath string, backingPath string) (*Config, error) {
	config := DefaultConfig()
	if backingPath != "" {
		config.BackingPath = backingPath
	}

	key, err := GenerateAPIKey(32)
	if err != nil {
		return nil, err
	}
	config.APIKey = key

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// DefaultConfigPath returns the default configuration path for the current
// platform.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./persistctl.yaml"
	}
	return filepath.Join(homeDir, ".config", "persistctl", "config.yaml")
}

// ConfigExists checks whether a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
