// Package config loads the YAML configuration of attmon.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/user/attmon/logger"
	"github.com/user/attmon/util"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration
type Config struct {
	StorageDir      string             `yaml:"storage_dir"`
	Output          string             `yaml:"output"`
	MaxPendingReads int                `yaml:"max_pending_reads"`
	Logging         LoggingConfig      `yaml:"logging"`
	Metrics         MetricsConfig      `yaml:"metrics"`
	Connections     []ConnectionConfig `yaml:"connections"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig contains the Prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// ConnectionConfig registers a connection before any packet is seen. Local
// and Peer are the adapter and device addresses used to locate the
// attribute databases.
type ConnectionConfig struct {
	Handle uint16 `yaml:"handle"`
	Local  string `yaml:"local"`
	Peer   string `yaml:"peer"`
}

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		StorageDir: util.GetDataDir(),
		Output:     OutputText,
		Logging:    LoggingConfig{Level: "info"},
		Metrics:    MetricsConfig{Address: ":9102"},
	}
}

// Load reads and parses the configuration file. Missing settings keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return config, nil
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.StorageDir == "" {
		return errors.New("storage_dir cannot be empty")
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}

	if c.MaxPendingReads < 0 {
		return errors.Errorf("max_pending_reads cannot be negative, got %d", c.MaxPendingReads)
	}

	if err := c.Logging.Validate(); err != nil {
		return errors.Wrap(err, "logging config")
	}

	if err := c.Metrics.Validate(); err != nil {
		return errors.Wrap(err, "metrics config")
	}

	seen := make(map[uint16]bool)
	for i, conn := range c.Connections {
		if err := conn.Validate(); err != nil {
			return errors.Wrapf(err, "connection #%d", i)
		}
		if seen[conn.Handle] {
			return errors.Errorf("connection handle 0x%04x listed twice", conn.Handle)
		}
		seen[conn.Handle] = true
	}

	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	switch strings.ToUpper(l.Level) {
	case "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	}
	return errors.Errorf("unknown level %q", l.Level)
}

// LogLevel returns the configured level
func (l *LoggingConfig) LogLevel() logger.LogLevel {
	return logger.ParseLevel(l.Level)
}

// Validate validates metrics configuration
func (m *MetricsConfig) Validate() error {
	if m.Enabled && m.Address == "" {
		return errors.New("address cannot be empty when metrics are enabled")
	}
	return nil
}

// Validate validates a connection entry
func (c *ConnectionConfig) Validate() error {
	if c.Handle > 0x0eff {
		return errors.Errorf("handle 0x%04x out of range", c.Handle)
	}
	if c.Local == "" || c.Peer == "" {
		return errors.New("local and peer addresses are required")
	}
	return nil
}
