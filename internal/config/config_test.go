package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.Second, cfg.Clock.Interval)
	assert.Equal(t, "WorkoutTimer", cfg.Settings.AppName)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := []byte("log:\n  level: debug\nclock:\n  interval: 500ms\nsettings:\n  app_name: GymTimer\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))
	t.Setenv("WORKOUT_LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 500*time.Millisecond, cfg.Clock.Interval)
	assert.Equal(t, "GymTimer", cfg.Settings.AppName)
}

func TestLoad_NonPositiveIntervalFallsBack(t *testing.T) {
	t.Setenv("WORKOUT_CLOCK_INTERVAL", "0s")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Clock.Interval)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
