package model

// Bounds for workout configuration values.
const (
	MinTimerDurationSeconds = 60
	MaxTimerDurationSeconds = 60 * 60
	MinTargetSets           = 1
	MaxTargetSets           = 100

	DefaultTimerDurationSeconds = 20 * 60
	DefaultTargetSets           = 30
)

// BreakOption is a preset break length offered to the user.
type BreakOption struct {
	Label   string
	Seconds int
}

// DefaultBreakOptions returns the preset break lengths.
func DefaultBreakOptions() []BreakOption {
	return []BreakOption{
		{Label: "Quick", Seconds: 30},
		{Label: "Normal", Seconds: 60},
		{Label: "Long", Seconds: 90},
		{Label: "Extended", Seconds: 120},
	}
}

// WorkoutConfig contains the starting values for a workout engine.
type WorkoutConfig struct {
	StartInSetsMode      bool
	TimerDurationSeconds int
	TargetSets           int
}

// DefaultWorkoutConfig returns Timer mode, 20 minutes and 30 sets.
func DefaultWorkoutConfig() WorkoutConfig {
	return WorkoutConfig{
		TimerDurationSeconds: DefaultTimerDurationSeconds,
		TargetSets:           DefaultTargetSets,
	}
}

// ClampTimerDuration limits seconds to [MinTimerDurationSeconds, MaxTimerDurationSeconds].
func ClampTimerDuration(seconds int) int {
	return clamp(seconds, MinTimerDurationSeconds, MaxTimerDurationSeconds)
}

// ClampTimerMinutes limits minutes to the whole-minute range of ClampTimerDuration.
func ClampTimerMinutes(minutes int) int {
	return clamp(minutes, MinTimerDurationSeconds/60, MaxTimerDurationSeconds/60)
}

// ClampTargetSets limits count to [MinTargetSets, MaxTargetSets].
func ClampTargetSets(count int) int {
	return clamp(count, MinTargetSets, MaxTargetSets)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
