package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "test-secret", cfg.JWTSecret)
	require.Equal(t, "userd", cfg.Issuer)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "userd", cfg.MongoDatabase)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_ISSUER", "userd-staging")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "userd-staging", cfg.Issuer)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestGetEnvDurationOrDefaultBareSeconds(t *testing.T) {
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "45")

	require.Equal(t, 45*time.Second, getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second))
}
