package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV_FILE", "PORT", "DB_TYPE", "DB_DATABASE", "CACHE_TYPE", "AUTH_SECRET", "DB_SEED", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "memory", cfg.CacheType)
	assert.Equal(t, "passwordKey", cfg.AuthHeader)
	assert.Equal(t, "passwordKey123456789", cfg.AuthSecret)
	assert.Equal(t, "en", cfg.DefaultCulture)
	assert.False(t, cfg.DBSeed)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadFromEnvFile(t *testing.T) {
	for _, key := range []string{"PORT", "CACHE_TYPE", "REDIS_DB", "DB_SEED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=8080\nCACHE_TYPE=redis\nREDIS_DB=3\nDB_SEED=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("ENV_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis", cfg.CacheType)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.DBSeed)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DBType:     "sqlite",
			DBDatabase: ":memory:",
			CacheType:  "memory",
			AuthHeader: "passwordKey",
			AuthSecret: "secret",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid sqlite", mutate: func(*Config) {}},
		{name: "unknown db type", mutate: func(c *Config) { c.DBType = "oracle" }, wantErr: "unsupported DB_TYPE"},
		{name: "network db without user", mutate: func(c *Config) { c.DBType = "postgres" }, wantErr: "DB_USER is required"},
		{name: "network db with user", mutate: func(c *Config) { c.DBType = "mysql"; c.DBUser = "app" }},
		{name: "unknown cache type", mutate: func(c *Config) { c.CacheType = "memcached" }, wantErr: "unsupported CACHE_TYPE"},
		{name: "negative ttl", mutate: func(c *Config) { c.CacheTTLSeconds = -1 }, wantErr: "must not be negative"},
		{name: "bcrypt cost too low", mutate: func(c *Config) { c.BcryptCost = 2 }, wantErr: "BCRYPT_COST"},
		{name: "known culture", mutate: func(c *Config) { c.DefaultCulture = "ru" }},
		{name: "unknown culture", mutate: func(c *Config) { c.DefaultCulture = "xx" }, wantErr: "DEFAULT_CULTURE"},
		{name: "empty secret", mutate: func(c *Config) { c.AuthSecret = "" }, wantErr: "must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
