// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/seqlist/registry"
	"github.com/ava-labs/seqlist/server"
	"github.com/ava-labs/seqlist/trace"
)

const (
	defaultHTTPHost       = "127.0.0.1"
	defaultHTTPPort       = 9660
	defaultBaseURL        = "/ext"
	defaultLogSizeMB      = 8
	defaultLogFiles       = 4
	defaultLogAgeDays     = 7
	defaultExpiryInterval = 10 * time.Second
)

// Config of the sequence server.
//
// Durations are strings ("30s") in YAML and nanoseconds in JSON.
type Config struct {
	// Logging
	LogLevel        string `json:"logLevel"        yaml:"logLevel"`
	LogDisplayLevel string `json:"logDisplayLevel" yaml:"logDisplayLevel"`
	LogFormat       string `json:"logFormat"       yaml:"logFormat"`
	// Log files are only written if set.
	LogDirectory string `json:"logDirectory" yaml:"logDirectory"`

	// HTTP
	HTTPHost        string            `json:"httpHost"        yaml:"httpHost"`
	HTTPPort        int               `json:"httpPort"        yaml:"httpPort"`
	BaseURL         string            `json:"baseURL"         yaml:"baseURL"`
	HTTP            server.HTTPConfig `json:"http"            yaml:"http"`
	AllowedOrigins  []string          `json:"allowedOrigins"  yaml:"allowedOrigins"`
	AllowedHosts    []string          `json:"allowedHosts"    yaml:"allowedHosts"`
	ShutdownTimeout time.Duration     `json:"shutdownTimeout" yaml:"shutdownTimeout"`

	// Registry
	Registry registry.Config `json:"registry" yaml:"registry"`
	// How often lapsed cursor leases are collected.
	ExpiryInterval time.Duration `json:"expiryInterval" yaml:"expiryInterval"`

	// Tracing
	Trace trace.Config `json:"trace" yaml:"trace"`
}

func NewDefault() *Config {
	return &Config{
		LogLevel:        logging.Info.String(),
		LogDisplayLevel: logging.Info.String(),
		LogFormat:       "auto",
		HTTPHost:        defaultHTTPHost,
		HTTPPort:        defaultHTTPPort,
		BaseURL:         defaultBaseURL,
		HTTP:            server.DefaultHTTPConfig(),
		AllowedOrigins:  []string{"*"},
		AllowedHosts:    []string{"localhost"},
		ShutdownTimeout: 10 * time.Second,
		Registry:        registry.DefaultConfig(),
		ExpiryInterval:  defaultExpiryInterval,
		Trace: trace.Config{
			Enabled:         false,
			Endpoint:        trace.DefaultEndpoint,
			TraceSampleRate: 0.1,
			AppName:         "seqlist",
		},
	}
}

// New parses [b] as JSON or YAML on top of [NewDefault].
func New(b []byte) (*Config, error) {
	c := NewDefault()
	if len(b) > 0 {
		switch {
		case isJSON(b):
			if err := json.Unmarshal(b, c); err != nil {
				return nil, err
			}
		case isYAML(b):
			if err := yaml.Unmarshal(b, c); err != nil {
				return nil, err
			}
		default:
			return nil, ErrInvalidFormat
		}
	}
	if err := c.Verify(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the config at [path]. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if len(path) == 0 {
		return New(nil)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(b)
}

func (c *Config) Verify() error {
	if _, err := logging.ToLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ToLevel(c.LogDisplayLevel); err != nil {
		return fmt.Errorf("%w: log display level: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ToFormat(c.LogFormat, os.Stdout.Fd()); err != nil {
		return fmt.Errorf("%w: log format: %w", ErrInvalidConfig, err)
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.HTTPPort)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidConfig)
	}
	if c.Registry.CursorTTL > 0 && c.ExpiryInterval <= 0 {
		return fmt.Errorf("%w: expiry interval must be positive when cursors expire", ErrInvalidConfig)
	}
	if err := c.Registry.Verify(); err != nil {
		return err
	}
	return c.Trace.Verify()
}

// ListenAddress is the host:port the HTTP server binds to.
func (c *Config) ListenAddress() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// LoggingConfig converts the logging fields into the config consumed by
// the log factory.
func (c *Config) LoggingConfig() (logging.Config, error) {
	var (
		config logging.Config
		err    error
	)
	config.LogLevel, err = logging.ToLevel(c.LogLevel)
	if err != nil {
		return config, err
	}
	config.DisplayLevel, err = logging.ToLevel(c.LogDisplayLevel)
	if err != nil {
		return config, err
	}
	config.LogFormat, err = logging.ToFormat(c.LogFormat, os.Stdout.Fd())
	if err != nil {
		return config, err
	}
	config.Directory = c.LogDirectory
	config.MaxSize = defaultLogSizeMB
	config.MaxFiles = defaultLogFiles
	config.MaxAge = defaultLogAgeDays
	config.Compress = true
	return config, nil
}

func isJSON(b []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(b, &js) == nil
}

func isYAML(b []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(b, &y) == nil
}
