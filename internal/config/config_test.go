package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_ENV", "SERVER_PORT", "DATABASE_DRIVER", "DATABASE_URL",
		"JWT_SECRET", "TOKEN_FORMAT", "JOBBOARD_SERVER", "JOBBOARD_SESSION",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "jwt", cfg.Auth.TokenFormat)
	assert.Equal(t, "password", cfg.Auth.DemoPassword)
	assert.Equal(t, 500*time.Millisecond, cfg.AuthLatency())
	assert.Equal(t, 300*time.Millisecond, cfg.JobsLatency())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Same(t, cfg, AppConfig)
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", writeConfig(t, `
server:
  port: 8081
  env: test
auth:
  token_format: plain
latency:
  auth_ms: 0
  users_ms: 10
`))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Env)
	assert.Equal(t, "plain", cfg.Auth.TokenFormat)
	assert.Zero(t, cfg.AuthLatency())
	assert.Equal(t, 10*time.Millisecond, cfg.UsersLatency())
	// не указанное в файле остается дефолтным
	assert.Equal(t, 300*time.Millisecond, cfg.JobsLatency())
	assert.Equal(t, "memory", cfg.Database.Driver)
}

func TestLoadConfig_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", writeConfig(t, "server:\n  port: 8081\n"))
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	t.Setenv("JOBBOARD_SESSION", "/tmp/session.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/jobs", cfg.Database.DSN)
	assert.Equal(t, "/tmp/session.db", cfg.Client.SessionPath)
}

func TestLoadConfig_BrokenYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_PATH", writeConfig(t, "server: [port"))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mongo" },
			wantErr: "unsupported database driver",
		},
		{
			name:    "postgres without url",
			mutate:  func(c *Config) { c.Database.Driver = "postgres" },
			wantErr: "database.url is required",
		},
		{
			name:    "jwt without secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "" },
			wantErr: "auth.jwt_secret is required",
		},
		{
			name: "plain without secret",
			mutate: func(c *Config) {
				c.Auth.TokenFormat = "plain"
				c.Auth.JWTSecret = ""
			},
		},
		{
			name:    "unknown token format",
			mutate:  func(c *Config) { c.Auth.TokenFormat = "paseto" },
			wantErr: "unsupported token format",
		},
		{
			name:    "empty demo password",
			mutate:  func(c *Config) { c.Auth.DemoPassword = "" },
			wantErr: "demo_password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
