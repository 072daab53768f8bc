package config

import (
	"crypto/tls"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmmannChristian/pwstrength/internal/strength"
)

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9091, cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.False(t, cfg.GRPCEnabled)
	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.False(t, cfg.TLSEnabled)
	assert.Empty(t, cfg.TLSCertFile)
	assert.Empty(t, cfg.TLSKeyFile)
	assert.Empty(t, cfg.TLSCAFile)
	assert.Equal(t, "none", cfg.TLSClientAuth)
	assert.Equal(t, "1.2", cfg.TLSMinVersion)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, strength.DefaultSpecialChars, cfg.SpecialChars)
	assert.Equal(t, 1024, cfg.MaxPasswordLength)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	clearEnv(t)

	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("METRICS_PORT", "9100")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("GRPC_ENABLED", "true")
	t.Setenv("GRPC_PORT", "50051")
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_FILE", "/tmp/server.crt")
	t.Setenv("TLS_KEY_FILE", "/tmp/server.key")
	t.Setenv("TLS_CA_FILE", "/tmp/ca.crt")
	t.Setenv("TLS_CLIENT_AUTH", "requireandverify")
	t.Setenv("TLS_MIN_VERSION", "1.3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SPECIAL_CHARS", "!?")
	t.Setenv("MAX_PASSWORD_LENGTH", "256")
	t.Setenv("TIMEOUT", "10s")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.ServerPort)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.True(t, cfg.GRPCEnabled)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.True(t, cfg.TLSEnabled)
	assert.Equal(t, "/tmp/server.crt", cfg.TLSCertFile)
	assert.Equal(t, "/tmp/server.key", cfg.TLSKeyFile)
	assert.Equal(t, "/tmp/ca.crt", cfg.TLSCAFile)
	assert.Equal(t, "requireandverify", cfg.TLSClientAuth)
	assert.Equal(t, "1.3", cfg.TLSMinVersion)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "!?", cfg.SpecialChars)
	assert.Equal(t, 256, cfg.MaxPasswordLength)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadConfig_EmptySpecialChars(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPECIAL_CHARS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.SpecialChars)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid config",
			cfg: &Config{
				ServerPort:        8080,
				GRPCPort:          9090,
				MaxPasswordLength: 128,
				LogLevel:          "info",
			},
			wantErr: false,
		},
		{
			name: "invalid server port - too low",
			cfg: &Config{
				ServerPort:        0,
				GRPCPort:          9090,
				MaxPasswordLength: 128,
				LogLevel:          "info",
			},
			wantErr: true,
			errMsg:  "invalid server port",
		},
		{
			name: "invalid server port - too high",
			cfg: &Config{
				ServerPort:        70000,
				GRPCPort:          9090,
				MaxPasswordLength: 128,
				LogLevel:          "info",
			},
			wantErr: true,
			errMsg:  "invalid server port",
		},
		{
			name: "invalid gRPC port when enabled",
			cfg: &Config{
				ServerPort:        8080,
				GRPCEnabled:       true,
				GRPCPort:          0,
				MaxPasswordLength: 128,
				LogLevel:          "info",
			},
			wantErr: true,
			errMsg:  "invalid gRPC port",
		},
		{
			name: "max password length zero",
			cfg: &Config{
				ServerPort:        8080,
				GRPCPort:          9090,
				MaxPasswordLength: 0,
				LogLevel:          "info",
			},
			wantErr: true,
			errMsg:  "invalid max password length",
		},
		{
			name: "max password length above input limit",
			cfg: &Config{
				ServerPort:        8080,
				GRPCPort:          9090,
				MaxPasswordLength: strength.MaxInputBytes + 1,
				LogLevel:          "info",
			},
			wantErr: true,
			errMsg:  "invalid max password length",
		},
		{
			name: "invalid log level",
			cfg: &Config{
				ServerPort:        8080,
				GRPCPort:          9090,
				MaxPasswordLength: 128,
				LogLevel:          "invalid",
			},
			wantErr: true,
			errMsg:  "invalid log level",
		},
		{
			name: "tls enabled without grpc",
			cfg: &Config{
				ServerPort:        8080,
				GRPCEnabled:       false,
				GRPCPort:          9090,
				LogLevel:          "info",
				MaxPasswordLength: 128,
				TLSEnabled:        true,
				TLSCertFile:       "/tmp/cert.pem",
				TLSKeyFile:        "/tmp/key.pem",
			},
			wantErr: true,
			errMsg:  "TLS requires gRPC",
		},
		{
			name: "tls enabled missing cert",
			cfg: &Config{
				ServerPort:        8080,
				GRPCEnabled:       true,
				GRPCPort:          9090,
				LogLevel:          "info",
				MaxPasswordLength: 128,
				TLSEnabled:        true,
				TLSKeyFile:        "/tmp/key.pem",
			},
			wantErr: true,
			errMsg:  "TLS_CERT_FILE",
		},
		{
			name: "tls enabled missing key",
			cfg: &Config{
				ServerPort:        8080,
				GRPCEnabled:       true,
				GRPCPort:          9090,
				LogLevel:          "info",
				MaxPasswordLength: 128,
				TLSEnabled:        true,
				TLSCertFile:       "/tmp/cert.pem",
			},
			wantErr: true,
			errMsg:  "TLS_KEY_FILE",
		},
		{
			name: "tls enabled invalid client auth",
			cfg: &Config{
				ServerPort:        8080,
				GRPCEnabled:       true,
				GRPCPort:          9090,
				LogLevel:          "info",
				MaxPasswordLength: 128,
				TLSEnabled:        true,
				TLSCertFile:       "/tmp/cert.pem",
				TLSKeyFile:        "/tmp/key.pem",
				TLSClientAuth:     "broken",
			},
			wantErr: true,
			errMsg:  "TLS_CLIENT_AUTH",
		},
		{
			name: "tls enabled invalid min version",
			cfg: &Config{
				ServerPort:        8080,
				GRPCEnabled:       true,
				GRPCPort:          9090,
				LogLevel:          "info",
				MaxPasswordLength: 128,
				TLSEnabled:        true,
				TLSCertFile:       "/tmp/cert.pem",
				TLSKeyFile:        "/tmp/key.pem",
				TLSMinVersion:     "1.1",
			},
			wantErr: true,
			errMsg:  "TLS_MIN_VERSION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_TLSAccessors(t *testing.T) {
	cfg := &Config{TLSClientAuth: "mtls", TLSMinVersion: "tls13"}

	auth, err := cfg.TLSClientAuthType()
	require.NoError(t, err)
	assert.Equal(t, tls.RequireAndVerifyClientCert, auth)

	version, err := cfg.TLSMinVersionValue()
	require.NoError(t, err)
	assert.Equal(t, uint16(tls.VersionTLS13), version)

	cfg = &Config{}
	auth, err = cfg.TLSClientAuthType()
	require.NoError(t, err)
	assert.Equal(t, tls.NoClientCert, auth)

	version, err = cfg.TLSMinVersionValue()
	require.NoError(t, err)
	assert.Equal(t, uint16(tls.VersionTLS12), version)
}

func TestLoadConfig_InvalidEnvironmentVariables(t *testing.T) {
	clearEnv(t)

	// Invalid integer falls back to default
	t.Setenv("SERVER_PORT", "invalid")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9091, cfg.ServerPort)

	clearEnv(t)

	// Invalid metrics port falls back to server port
	t.Setenv("METRICS_PORT", "not-a-number")
	t.Setenv("SERVER_PORT", "9101")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9101, cfg.ServerPort)

	clearEnv(t)

	t.Setenv("MAX_PASSWORD_LENGTH", "lots")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.MaxPasswordLength)

	clearEnv(t)

	t.Setenv("GRPC_ENABLED", "maybe")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.GRPCEnabled)

	clearEnv(t)

	t.Setenv("TIMEOUT", "invalid-duration")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	clearEnv(t)

	t.Setenv("SERVER_PORT", "99999")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

// clearEnv unsets every variable LoadConfig reads; t.Setenv restores the
// original values when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT", "SERVER_HOST", "GRPC_ENABLED", "GRPC_PORT", "METRICS_PORT",
		"TLS_ENABLED", "TLS_CERT_FILE", "TLS_KEY_FILE", "TLS_CA_FILE", "TLS_CLIENT_AUTH", "TLS_MIN_VERSION",
		"LOG_LEVEL", "SPECIAL_CHARS", "MAX_PASSWORD_LENGTH", "TIMEOUT", "METRICS_ENABLED",
	}
	for _, v := range envVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}
