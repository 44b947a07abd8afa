package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aaearon/cloudformation-transfer-providers/internal/client"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provider.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
region: eu-west-1
endpoint: http://localhost:4566
max_attempts: 5
log_level: debug
`)
	t.Setenv(EnvRegion, "")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvMaxAttempts, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Region:      "eu-west-1",
		Endpoint:    "http://localhost:4566",
		MaxAttempts: 5,
		LogLevel:    "DEBUG",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "region: eu-west-1\nmax_attempts: 5\n")
	t.Setenv(EnvRegion, "us-west-2")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvMaxAttempts, "2")
	t.Setenv(EnvLogLevel, "trace")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Region != "us-west-2" || cfg.MaxAttempts != 2 || cfg.LogLevel != "TRACE" {
		t.Errorf("Load() = %+v, want environment values", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		env         map[string]string
		errContains string
	}{
		{
			name:        "unknown key",
			content:     "regoin: us-east-1\n",
			errContains: "failed to parse config file",
		},
		{
			name:        "max attempts out of range",
			content:     "max_attempts: 50\n",
			errContains: "max_attempts",
		},
		{
			name:        "bad log level",
			content:     "log_level: verbose\n",
			errContains: "log_level",
		},
		{
			name:        "non-numeric max attempts",
			env:         map[string]string{EnvMaxAttempts: "many"},
			errContains: EnvMaxAttempts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvRegion, EnvEndpoint, EnvMaxAttempts, EnvLogLevel} {
				t.Setenv(key, tt.env[key])
			}

			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Load() error = %q, want error containing %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvRegion, "ap-southeast-2")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvMaxAttempts, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Region != "ap-southeast-2" {
		t.Errorf("Region = %q, want ap-southeast-2", cfg.Region)
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &Config{Region: "eu-west-1", Endpoint: "http://localhost:4566", MaxAttempts: 3}
	creds := &client.Credentials{AccessKeyID: "AKIAEXAMPLE", SecretAccessKey: "secret"}

	got := cfg.ClientOptions("", creds)
	want := client.Options{Region: "eu-west-1", Endpoint: "http://localhost:4566", MaxAttempts: 3, Credentials: creds}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClientOptions() mismatch (-want +got):\n%s", diff)
	}

	if got := cfg.ClientOptions("us-east-1", nil); got.Region != "us-east-1" {
		t.Errorf("ClientOptions() region = %q, want the request region", got.Region)
	}
}
