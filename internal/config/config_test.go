package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	// Empty values fall back to defaults.
	for _, key := range []string{"PORT", "HOST", "DATABASE_PATH", "DATABASE_LOG_LEVEL", "BOOTSTRAP_ENABLED", "TEMPLATES_PATH"} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	assert.Equal(t, int32(8080), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 2, cfg.Global.ShutdownTimeoutInSeconds)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Bootstrap.Enabled)
	assert.Empty(t, cfg.UI.TemplatesPath)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("DATABASE_PATH", "./books.db")
	t.Setenv("DATABASE_LOG_LEVEL", "silent")
	t.Setenv("BOOTSTRAP_ENABLED", "false")
	t.Setenv("TEMPLATES_PATH", "./templates")

	cfg := NewConfig()

	assert.Equal(t, int32(9191), cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "./books.db", cfg.Database.Path)
	assert.Equal(t, "silent", cfg.Database.LogLevel)
	assert.False(t, cfg.Bootstrap.Enabled)
	assert.Equal(t, "./templates", cfg.UI.TemplatesPath)
}
