package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "APP_PORT", "API_URL", "API_TIMEOUT", "STUB_API_PORT", "APP_ENV", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultAPIURL, cfg.APIURL)
	require.Equal(t, "4200", cfg.Port)
	require.Zero(t, cfg.APITimeout)
	require.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_OverrideBeatsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "https://library.example.com/api")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://library.example.com/api", cfg.APIURL)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 3*time.Second, cfg.APITimeout)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_PortWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "7000", cfg.Port)
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)
}
