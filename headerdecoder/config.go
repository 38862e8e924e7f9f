package headerdecoder

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for header decoding
type Config struct {
	// MaxNameLength caps header name length in bytes (0 = no limit)
	MaxNameLength int `json:"max_name_length" yaml:"max_name_length"`
	// MaxValueLength caps header value length in bytes (0 = no limit)
	MaxValueLength int `json:"max_value_length" yaml:"max_value_length"`
	// Debug enables debug logging
	Debug bool `json:"debug" yaml:"debug"`
}

// LoadConfigFromFile loads configuration from a file (JSON or YAML)
func LoadConfigFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, &config); err != nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file as YAML or JSON: %w", err)
		}
	}

	return &config, nil
}

// SaveConfigToFile saves configuration to a file
func SaveConfigToFile(config *Config, filename string, format string) error {
	var data []byte
	var err error

	switch format {
	case "yaml", "yml":
		data, err = yaml.Marshal(config)
	case "json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}

// ValidateConfig performs configuration validation
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration is nil")
	}

	if config.MaxNameLength < 0 {
		return fmt.Errorf("max_name_length cannot be negative: %d", config.MaxNameLength)
	}
	if config.MaxValueLength < 0 {
		return fmt.Errorf("max_value_length cannot be negative: %d", config.MaxValueLength)
	}

	return nil
}

// Builder provides a fluent API for creating Decoder configurations

// Builder helps build Decoder configurations
type Builder struct {
	config *Config
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		config: &Config{},
	}
}

// MaxNameLength caps header name length in bytes
func (b *Builder) MaxNameLength(n int) *Builder {
	b.config.MaxNameLength = n
	return b
}

// MaxValueLength caps header value length in bytes
func (b *Builder) MaxValueLength(n int) *Builder {
	b.config.MaxValueLength = n
	return b
}

// Debug enables debug logging
func (b *Builder) Debug(debug bool) *Builder {
	b.config.Debug = debug
	return b
}

// Build creates the Decoder
func (b *Builder) Build() *Decoder {
	return NewDecoder(b.config)
}
