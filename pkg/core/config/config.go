// ============================================================================
// toolbox - Identifier Case Conversion Toolkit
// ============================================================================
//
// Package:     config
// Description: Typed application configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tberror "github.com/msto63/toolbox/foundation/core/error"
	"github.com/msto63/toolbox/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable that points at the config file
const EnvConfigPath = "TOOLBOX_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Server     ServerConfig     `toml:"server" yaml:"server"`
	HTTP       HTTPConfig       `toml:"http" yaml:"http"`
	Conversion ConversionConfig `toml:"conversion" yaml:"conversion"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// ServerConfig holds the gRPC server settings
type ServerConfig struct {
	Port             int      `toml:"port" yaml:"port"`
	Host             string   `toml:"host" yaml:"host"`
	EnableReflection bool     `toml:"enable_reflection" yaml:"enable_reflection"`
	MaxRecvMsgSize   int      `toml:"max_recv_msg_size" yaml:"max_recv_msg_size"`
	ShutdownTimeout  Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// HTTPConfig holds the HTTP/WebSocket API settings
type HTTPConfig struct {
	Port         int        `toml:"port" yaml:"port"`
	Host         string     `toml:"host" yaml:"host"`
	ReadTimeout  Duration   `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout Duration   `toml:"write_timeout" yaml:"write_timeout"`
	CORS         CORSConfig `toml:"cors" yaml:"cors"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	Enabled        bool     `toml:"enabled" yaml:"enabled"`
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`
}

// ConversionConfig bounds the work a single request may ask for
type ConversionConfig struct {
	DefaultCase   string   `toml:"default_case" yaml:"default_case"`
	MaxInputBytes int      `toml:"max_input_bytes" yaml:"max_input_bytes"`
	BatchLimit    int      `toml:"batch_limit" yaml:"batch_limit"`
	CacheSize     int      `toml:"cache_size" yaml:"cache_size"`
	CacheTTL      Duration `toml:"cache_ttl" yaml:"cache_ttl"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tberror.Newf("config file not found: %s", path).
				WithCode(tberror.CodeConfigNotFound).
				WithDetail("path", path)
		}
		return nil, tberror.Wrap(err, "failed to read config").
			WithCode(tberror.CodeIO).
			WithDetail("path", path)
	}

	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, tberror.Wrap(err, "failed to load config").WithDetail("path", path)
	}
	return cfg, nil
}

// Parse decodes configuration data in the given format ("toml" or "yaml"),
// applies defaults and validates the result
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return nil, tberror.Wrap(err, "failed to parse TOML config").WithCode(tberror.CodeConfigInvalid)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, tberror.Wrap(err, "failed to parse YAML config").WithCode(tberror.CodeConfigInvalid)
		}
	default:
		return nil, tberror.Newf("unsupported config format %q", format).WithCode(tberror.CodeConfigInvalid)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the TOOLBOX_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, tberror.Newf("no config file found, set %s or create configs/config.toml", EnvConfigPath).
			WithCode(tberror.CodeConfigNotFound)
	}

	return Load(path)
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	return []string{
		"./configs/config.toml",
		"./configs/config.yaml",
		"./config.toml",
		"./config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/toolbox/config.toml"),
	}
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "toolbox"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "json"
	}

	// gRPC
	if c.Server.Port == 0 {
		c.Server.Port = 9310
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.MaxRecvMsgSize == 0 {
		c.Server.MaxRecvMsgSize = 4 * 1024 * 1024
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 10 * time.Second
	}

	// HTTP
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8310
	}
	if c.HTTP.Host == "" {
		c.HTTP.Host = "0.0.0.0"
	}
	if c.HTTP.ReadTimeout.Duration == 0 {
		c.HTTP.ReadTimeout.Duration = 30 * time.Second
	}
	if c.HTTP.WriteTimeout.Duration == 0 {
		c.HTTP.WriteTimeout.Duration = 30 * time.Second
	}

	// Conversion
	if c.Conversion.DefaultCase == "" {
		c.Conversion.DefaultCase = stringx.CaseKebab.String()
	}
	if c.Conversion.MaxInputBytes == 0 {
		c.Conversion.MaxInputBytes = 64 * 1024
	}
	if c.Conversion.BatchLimit == 0 {
		c.Conversion.BatchLimit = 1000
	}
	if c.Conversion.CacheSize == 0 {
		c.Conversion.CacheSize = 1024
	}
	if c.Conversion.CacheTTL.Duration == 0 {
		c.Conversion.CacheTTL.Duration = 10 * time.Minute
	}
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return tberror.Newf("invalid %s: %s", field, reason).
			WithCode(tberror.CodeConfigInvalid).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return invalid("server.port", c.Server.Port, "out of range")
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return invalid("http.port", c.HTTP.Port, "out of range")
	}
	if c.Conversion.MaxInputBytes < 0 {
		return invalid("conversion.max_input_bytes", c.Conversion.MaxInputBytes, "must not be negative")
	}
	if c.Conversion.BatchLimit < 0 {
		return invalid("conversion.batch_limit", c.Conversion.BatchLimit, "must not be negative")
	}
	if c.Conversion.CacheSize < 0 {
		return invalid("conversion.cache_size", c.Conversion.CacheSize, "must not be negative")
	}
	if _, err := stringx.ParseCase(c.Conversion.DefaultCase); err != nil {
		return invalid("conversion.default_case", c.Conversion.DefaultCase, "unknown case")
	}
	return nil
}

// DefaultCase returns the configured default conversion
func (c *Config) DefaultCase() stringx.Case {
	kind, err := stringx.ParseCase(c.Conversion.DefaultCase)
	if err != nil {
		return stringx.CaseKebab
	}
	return kind
}

// GetServiceAddress returns the listen address for "grpc" or "http"
func (c *Config) GetServiceAddress(service string) string {
	switch service {
	case "grpc":
		return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
	case "http":
		return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
	default:
		return ""
	}
}
