package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_PATH", "SESSION_STORE", "SESSION_MAX_AGE", "CORS_ORIGINS", "PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "campus_wellness.db", cfg.DBPath)
	assert.Equal(t, "cookie", cfg.SessionStore)
	assert.Equal(t, 86400*7, cfg.SessionMaxAge)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("SESSION_MAX_AGE", "3600")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 3600, cfg.SessionMaxAge)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SESSION_MAX_AGE", "soon")

	assert.Equal(t, 86400*7, Load().SessionMaxAge)
}
