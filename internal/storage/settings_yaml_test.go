package storage

import (
	"os"
	"path/filepath"
	"testing"

	"workouttimer/internal/core/model"
	"workouttimer/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFile_MissingReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	saved := preferences.Settings{
		TimerDurationMinutes: 45,
		TargetSets:           12,
		StartInSetsMode:      true,
		BreakOptions:         []model.BreakOption{{Label: "Rest", Seconds: 45}},
		SoundEnabled:         false,
		SoundVolume:          0.25,
		NotificationsEnabled: false,
	}

	require.NoError(t, SaveSettingsFile(path, saved))
	loaded, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, saved, loaded)
}

func TestLoadSettingsFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("target_sets: 8\n"), 0o644))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8, settings.TargetSets)
	assert.Equal(t, 20, settings.TimerDurationMinutes)
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.NotificationsEnabled)
	assert.Equal(t, model.DefaultBreakOptions(), settings.BreakOptions)
	assert.False(t, settings.StartInSetsMode)
}

func TestLoadSettingsFile_ClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	content := "timer_duration_minutes: 240\ntarget_sets: 900\nsound_volume: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, 60, settings.TimerDurationMinutes)
	assert.Equal(t, 100, settings.TargetSets)
	assert.Equal(t, 1.0, settings.SoundVolume)
}

func TestLoadSettingsFile_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("target_sets: [1, 2"), 0o644))

	settings, err := LoadSettingsFile(path)

	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}
