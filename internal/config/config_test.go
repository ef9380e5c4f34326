package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var configEnvVars = []string{
	"APP_ENV", "ENV", "HTTP_ADDR", "METRICS_ADDR", "DATABASE_URL", "JWT_SECRET", "JWT_TTL",
	"SHUTDOWN_TIMEOUT", "BCRYPT_COST", "AUTH_RATE_LIMIT", "AUTH_RATE_BURST", "CORS_ALLOWED_ORIGINS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "hotel.db", cfg.DatabaseURL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, 5.0, cfg.AuthRateLimit)
	assert.Equal(t, 10, cfg.AuthRateBurst)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Staging")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.AppEnv)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"JWT_TTL":         "soon",
		"BCRYPT_COST":     "99",
		"AUTH_RATE_LIMIT": "-1",
		"AUTH_RATE_BURST": "many",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProdRequiresStrongSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "short")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, IsProdLike(cfg.AppEnv))
}
