package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the datastream tool configuration
type Config struct {
	DataDir  string   `yaml:"data_dir"`
	Port     int      `yaml:"port"`
	Bind     string   `yaml:"bind"`
	Security Security `yaml:"security"`
	Logging  Logging  `yaml:"logging"`
	Parser   Parser   `yaml:"parser"`
	Watch    Watch    `yaml:"watch"`
}

// Security contains security-related configuration
type Security struct {
	APIKey        string `yaml:"api_key"`
	MaxUploadSize int64  `yaml:"max_upload_size"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// Parser controls how Datastream files are read
type Parser struct {
	Strict bool `yaml:"strict"`
}

// Watch configures the inbox watcher. Processed and Failed default to
// subdirectories of Inbox when empty.
type Watch struct {
	Inbox     string `yaml:"inbox"`
	Processed string `yaml:"processed"`
	Failed    string `yaml:"failed"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Port:    8080,
		Bind:    "127.0.0.1",
		Security: Security{
			APIKey:        "auto",
			MaxUploadSize: 32 << 20,
		},
		Logging: Logging{
			Level: "info",
		},
		Watch: Watch{
			Inbox: "./inbox",
		},
	}
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must be set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	if c.Security.MaxUploadSize < 0 {
		return fmt.Errorf("max_upload_size must not be negative")
	}
	return nil
}

// ProcessedDir returns the directory successfully imported files are moved to
func (w Watch) ProcessedDir() string {
	if w.Processed != "" {
		return w.Processed
	}
	return filepath.Join(w.Inbox, "processed")
}

// FailedDir returns the directory files that failed to import are moved to
func (w Watch) FailedDir() string {
	if w.Failed != "" {
		return w.Failed
	}
	return filepath.Join(w.Inbox, "failed")
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Missing keys keep their defaults
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
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

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./datastream.yaml"
	}

	// For Linux/macOS, use ~/.config/datastream/config.yaml
	return filepath.Join(homeDir, ".config", "datastream", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
