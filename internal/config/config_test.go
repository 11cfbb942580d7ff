package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"FORGE_OUTPUT_DIR",
	"FORGE_TARGET_REPOS",
	"FORGE_START_ID",
	"FORGE_SEED",
	"FORGE_FAULT_RATE",
	"STORAGE_TYPE",
	"SQLITE_PATH",
	"POSTGRES_URL",
	"API_PORT",
	"API_HOST",
	"API_ENDPOINT",
}

// isolateConfigEnv saves and unsets all config env vars so tests don't
// inherit values from the host environment.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			key, orig := key, orig
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			key := key
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "./corpus", cfg.OutputDir)
	assert.Equal(t, 1000, cfg.TargetRepos)
	assert.Equal(t, 5001, cfg.StartID)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 0.10, cfg.FaultRate)
	assert.Equal(t, "sqlite", cfg.StorageType)
	assert.Equal(t, "./forge.db", cfg.SQLitePath)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FORGE_OUTPUT_DIR", "/tmp/out")
	t.Setenv("FORGE_TARGET_REPOS", "25")
	t.Setenv("FORGE_START_ID", "100")
	t.Setenv("FORGE_SEED", "42")
	t.Setenv("FORGE_FAULT_RATE", "0.5")
	t.Setenv("STORAGE_TYPE", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://localhost/forge")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 25, cfg.TargetRepos)
	assert.Equal(t, 100, cfg.StartID)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.5, cfg.FaultRate)
	assert.Equal(t, "postgres", cfg.StorageType)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("FORGE_TARGET_REPOS", "not-a-number")
	t.Setenv("FORGE_FAULT_RATE", "ten percent")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.TargetRepos)
	assert.Equal(t, 0.10, cfg.FaultRate)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, "FORGE_OUTPUT_DIR"},
		{"zero target", func(c *Config) { c.TargetRepos = 0 }, "FORGE_TARGET_REPOS"},
		{"negative fault rate", func(c *Config) { c.FaultRate = -0.1 }, "FORGE_FAULT_RATE"},
		{"fault rate above one", func(c *Config) { c.FaultRate = 1.1 }, "FORGE_FAULT_RATE"},
		{"bad storage type", func(c *Config) { c.StorageType = "dynamo" }, "STORAGE_TYPE"},
		{"postgres without url", func(c *Config) { c.StorageType = "postgres"; c.PostgresURL = "" }, "POSTGRES_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				OutputDir:   "./corpus",
				TargetRepos: 10,
				FaultRate:   0.1,
				StorageType: "sqlite",
				SQLitePath:  "./forge.db",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
