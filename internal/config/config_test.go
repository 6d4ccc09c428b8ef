package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_SQLITE_PATH", "STORE_MAX_RETRIES", "AUTO_MIGRATE", "LOG_LEVEL", "APP_ENV", "DB_CONN_MAX_LIFETIME"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "backoffice.db", cfg.Database.SQLitePath)
	assert.Equal(t, 5, cfg.Store.MaxRetries)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.IsDevelopment())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "ledger")
	t.Setenv("STORE_MAX_RETRIES", "9")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 9, cfg.Store.MaxRetries)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 90*time.Second, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "host=db.internal port=5432 user=backoffice password=backoffice dbname=ledger sslmode=disable", cfg.Database.DSN())
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("STORE_MAX_RETRIES", "many")
	t.Setenv("AUTO_MIGRATE", "perhaps")

	cfg := Load()

	assert.Equal(t, 5, cfg.Store.MaxRetries)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "sqlite ok",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: "unsupported DB_DRIVER",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.Database.SQLitePath = "" },
			wantErr: "DB_SQLITE_PATH",
		},
		{
			name: "postgres without host",
			mutate: func(c *Config) {
				c.Database.Driver = DriverPostgres
				c.Database.Host = ""
			},
			wantErr: "DB_HOST",
		},
		{
			name:    "zero retries",
			mutate:  func(c *Config) { c.Store.MaxRetries = 0 },
			wantErr: "STORE_MAX_RETRIES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			cfg.Database.Driver = DriverSQLite
			cfg.Database.SQLitePath = "test.db"
			cfg.Store.MaxRetries = 3
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

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		app := AppConfig{LogLevel: in}
		assert.Equal(t, want, app.SlogLevel(), in)
	}
}
