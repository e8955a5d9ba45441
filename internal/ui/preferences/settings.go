package preferences

import (
	"workouttimer/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	TimerDurationMinutes int
	TargetSets           int
	StartInSetsMode      bool
	BreakOptions         []model.BreakOption

	SoundEnabled         bool
	SoundVolume          float64
	NotificationsEnabled bool
}

// DefaultSettings returns default settings for the workout timer.
func DefaultSettings() Settings {
	return Settings{
		TimerDurationMinutes: model.DefaultTimerDurationSeconds / 60,
		TargetSets:           model.DefaultTargetSets,
		BreakOptions:         model.DefaultBreakOptions(),
		SoundEnabled:         true,
		SoundVolume:          1,
		NotificationsEnabled: true,
	}
}

// WorkoutConfig converts settings to the engine's starting configuration.
func (settings Settings) WorkoutConfig() model.WorkoutConfig {
	return model.WorkoutConfig{
		StartInSetsMode:      settings.StartInSetsMode,
		TimerDurationSeconds: model.ClampTimerMinutes(settings.TimerDurationMinutes) * 60,
		TargetSets:           model.ClampTargetSets(settings.TargetSets),
	}
}

// Normalize clamps every value into its valid range.
func (settings Settings) Normalize() Settings {
	settings.TimerDurationMinutes = model.ClampTimerMinutes(settings.TimerDurationMinutes)
	settings.TargetSets = model.ClampTargetSets(settings.TargetSets)
	if settings.SoundVolume < 0 {
		settings.SoundVolume = 0
	}
	if settings.SoundVolume > 1 {
		settings.SoundVolume = 1
	}

	options := make([]model.BreakOption, 0, len(settings.BreakOptions))
	for _, option := range settings.BreakOptions {
		if option.Seconds > 0 && option.Label != "" {
			options = append(options, option)
		}
	}
	if len(options) == 0 {
		options = model.DefaultBreakOptions()
	}
	settings.BreakOptions = options
	return settings
}
