package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here
	for _, k := range []string{"PORT", "DATABASE_URL", "JWT_TTL_MINUTES", "RANK_WORKERS", "MATCH_CACHE_TTL_SECONDS", "REDIS_URL", "MAX_UPLOAD_MB"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, 8, cfg.RankWorkers)
	assert.Equal(t, 10*time.Minute, cfg.MatchCacheTTL)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("RANK_WORKERS", "2")
	t.Setenv("MATCH_CACHE_TTL_SECONDS", "30")
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2, cfg.RankWorkers)
	assert.Equal(t, 30*time.Second, cfg.MatchCacheTTL)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
}
