// Package config loads the provider runtime settings from an optional YAML
// file and TRANSFER_PROVIDER_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
	"github.com/aaearon/cloudformation-transfer-providers/internal/validators"
)

// Environment variables read by Load. They override the config file.
const (
	EnvRegion      = "TRANSFER_PROVIDER_REGION"
	EnvEndpoint    = "TRANSFER_PROVIDER_ENDPOINT"
	EnvMaxAttempts = "TRANSFER_PROVIDER_MAX_ATTEMPTS"
	EnvLogLevel    = "TRANSFER_PROVIDER_LOG"
)

// Config holds the runtime settings shared by every invocation
type Config struct {
	// Region is used when a request carries none
	Region      string `yaml:"region" json:"region" validate:"omitempty,hostname"`
	Endpoint    string `yaml:"endpoint" json:"endpoint" validate:"omitempty,url"`
	MaxAttempts int    `yaml:"max_attempts" json:"max_attempts" validate:"gte=0,lte=10"`
	LogLevel    string `yaml:"log_level" json:"log_level" validate:"omitempty,oneof=TRACE DEBUG INFO WARN ERROR OFF"`
}

// LookupFunc reads one environment variable
type LookupFunc func(key string) (string, bool)

// Load reads path when it is not empty, applies the environment and validates the result
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode strictly decodes YAML; unknown keys are an error. An empty document is allowed.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overlays the TRANSFER_PROVIDER_* variables found by lookup
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvRegion); ok && v != "" {
		c.Region = v
	}
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Endpoint = v
	}
	if v, ok := lookup(EnvMaxAttempts); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s '%s': %w", EnvMaxAttempts, v, err)
		}
		c.MaxAttempts = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	c.LogLevel = strings.ToUpper(c.LogLevel)
	return nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	if err := validators.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ClientOptions returns the Transfer client options for one request. The
// request region wins over the configured one.
func (c *Config) ClientOptions(region string, creds *client.Credentials) client.Options {
	if region == "" {
		region = c.Region
	}
	return client.Options{
		Region:      region,
		Endpoint:    c.Endpoint,
		MaxAttempts: c.MaxAttempts,
		Credentials: creds,
	}
}
