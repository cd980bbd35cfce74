// Package config loads converter settings from a YAML file and builds the
// matching converter.Registry.
//
//	dialect: postgres
//	serializer: json
//	enum_column_size: 255
//	stats: true
//	error_log: true
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syssam/veloxconv/converter"
	"github.com/syssam/veloxconv/dialect"
	"github.com/syssam/veloxconv/serializer"
)

// Config is the converter configuration.
type Config struct {
	// Dialect is the SQL dialect name (postgres, mysql or sqlite).
	Dialect string `yaml:"dialect"`

	// Serializer is the text encoding of serialized columns (json, yaml or
	// msgpack). Default is json.
	Serializer string `yaml:"serializer,omitempty"`

	// EnumColumnSize is the length of enum name columns. Zero selects the
	// maximum-length text column; unset selects converter.DefaultEnumSize.
	EnumColumnSize *int `yaml:"enum_column_size,omitempty"`

	// Stats enables conversion statistics.
	Stats bool `yaml:"stats,omitempty"`

	// ErrorLog logs failed conversions. It requires Stats.
	ErrorLog bool `yaml:"error_log,omitempty"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read converter config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse converter config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal converter config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports all invalid settings of c.
func (c *Config) Validate() error {
	var errs []error
	switch c.Dialect {
	case dialect.Postgres, dialect.MySQL, dialect.SQLite:
	case "":
		errs = append(errs, errors.New("config: dialect is required"))
	default:
		errs = append(errs, fmt.Errorf("config: unsupported dialect %q", c.Dialect))
	}
	switch c.Serializer {
	case "", serializer.FormatJSON, serializer.FormatYAML, serializer.FormatMessagePack:
	default:
		errs = append(errs, fmt.Errorf("config: unknown serializer %q", c.Serializer))
	}
	if c.EnumColumnSize != nil && *c.EnumColumnSize < 0 {
		errs = append(errs, fmt.Errorf("config: enum_column_size must not be negative, got %d", *c.EnumColumnSize))
	}
	if c.ErrorLog && !c.Stats {
		errs = append(errs, errors.New("config: error_log requires stats"))
	}
	return errors.Join(errs...)
}

// Build returns the registry described by c. Options are applied after the
// configured ones.
func (c *Config) Build(opts ...converter.RegistryOption) (*converter.Registry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ser, err := serializer.New(c.Serializer)
	if err != nil {
		return nil, err
	}
	d, err := dialect.New(c.Dialect, dialect.WithSerializer(ser))
	if err != nil {
		return nil, err
	}
	var configured []converter.RegistryOption
	if c.EnumColumnSize != nil {
		configured = append(configured, converter.WithEnumSize(*c.EnumColumnSize))
	}
	if c.Stats {
		var observe []converter.ObserveOption
		if c.ErrorLog {
			observe = append(observe, converter.WithErrorLog())
		}
		configured = append(configured, converter.WithStats(&converter.Stats{}, observe...))
	}
	slog.Debug("building converter registry", "dialect", d.Name(), "serializer", ser.Format(), "stats", c.Stats)
	return converter.NewRegistry(d, ser, append(configured, opts...)...), nil
}
