package preferences

import (
	"math"
	"testing"

	"workouttimer/internal/core/model"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	config := settings.WorkoutConfig()
	assert.Equal(t, model.DefaultWorkoutConfig(), config)
	assert.Len(t, settings.BreakOptions, 4)
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.NotificationsEnabled)
}

func TestNormalize(t *testing.T) {
	settings := Settings{
		TimerDurationMinutes: 90,
		TargetSets:           0,
		SoundVolume:          4,
		BreakOptions: []model.BreakOption{
			{Label: "Zero", Seconds: 0},
			{Label: "", Seconds: 10},
			{Label: "Short", Seconds: 15},
		},
	}

	normalized := settings.Normalize()

	assert.Equal(t, 60, normalized.TimerDurationMinutes)
	assert.Equal(t, 1, normalized.TargetSets)
	assert.Equal(t, 1.0, normalized.SoundVolume)
	assert.Equal(t, []model.BreakOption{{Label: "Short", Seconds: 15}}, normalized.BreakOptions)
}

func TestNormalize_RestoresDefaultBreakOptions(t *testing.T) {
	normalized := Settings{TimerDurationMinutes: 0, SoundVolume: -2}.Normalize()

	assert.Equal(t, 1, normalized.TimerDurationMinutes)
	assert.Equal(t, 0.0, normalized.SoundVolume)
	assert.Equal(t, model.DefaultBreakOptions(), normalized.BreakOptions)
}

func TestWorkoutConfig_Clamps(t *testing.T) {
	config := Settings{TimerDurationMinutes: 500, TargetSets: 1000, StartInSetsMode: true}.WorkoutConfig()

	assert.Equal(t, model.MaxTimerDurationSeconds, config.TimerDurationSeconds)
	assert.Equal(t, model.MaxTargetSets, config.TargetSets)
	assert.True(t, config.StartInSetsMode)
}

func TestHugeTimerMinutesClampToMaximum(t *testing.T) {
	const huge = math.MaxInt / 30

	settings := Settings{TimerDurationMinutes: huge, TargetSets: 10}

	assert.Equal(t, model.MaxTimerDurationSeconds, settings.WorkoutConfig().TimerDurationSeconds)
	assert.Equal(t, 60, settings.Normalize().TimerDurationMinutes)
}
