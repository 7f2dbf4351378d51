package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Ensure clean env for this test.
	os.Clearenv()

	cfg := Load()
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_OverridesAndInvalidValues(t *testing.T) {
	t.Cleanup(os.Clearenv)

	t.Run("valid overrides", func(t *testing.T) {
		os.Setenv("NOTES_HTTP_ADDR", ":9999")
		os.Setenv("NOTES_READ_HEADER_TIMEOUT", "1s")
		os.Setenv("NOTES_SHUTDOWN_TIMEOUT", "1m")
		os.Setenv("NOTES_LOG_LEVEL", "debug")
		os.Setenv("NOTES_LOG_FORMAT", "json")

		cfg := Load()
		require.Equal(t, ":9999", cfg.HTTPAddr)
		require.Equal(t, time.Second, cfg.ReadHeaderTimeout)
		require.Equal(t, time.Minute, cfg.ShutdownTimeout)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("invalid durations fall back to defaults", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("NOTES_READ_HEADER_TIMEOUT", "bad")
		os.Setenv("NOTES_SHUTDOWN_TIMEOUT", "-3s")

		cfg := Load()
		require.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
		require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})
}
