package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "local", cfg.Filing.Provider)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GSTBOOK_DB_HOST", "db.internal")
	t.Setenv("GSTBOOK_SERVER_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "production", cfg.Server.Environment)
}

func TestDSN(t *testing.T) {
	d := DBConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "gst", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@localhost:5432/gst?sslmode=disable", d.DSN())
}

func TestPortEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}
