package workout

import (
	"fmt"

	"workouttimer/internal/core/model"
)

// Mode selects which primary metric drives completion.
type Mode string

const (
	ModeTimer Mode = "timer"
	ModeSets  Mode = "sets"
)

// Valid reports whether mode is a known mode.
func (mode Mode) Valid() bool {
	return mode == ModeTimer || mode == ModeSets
}

// State is a snapshot of the workout.
//
// In Timer mode CurrentTime counts down from TimerDuration and CurrentSets counts
// completed sets. In Sets mode CurrentTime is the stopwatch for the current set and
// CurrentSets counts the sets still remaining.
type State struct {
	Mode          Mode
	TimerDuration int
	CurrentTime   int
	IsRunning     bool
	TargetSets    int
	CurrentSets   int
	IsOnBreak     bool
	BreakTime     int
	BreakDuration int
}

// Active reports whether either clock needs ticks.
func (state State) Active() bool {
	return state.IsRunning || state.IsOnBreak
}

// Complete reports whether the workout goal has been reached.
func (state State) Complete() bool {
	if state.Mode == ModeSets {
		return state.CurrentSets == 0
	}
	return state.CurrentTime == 0
}

// Summary returns the completion message, or an empty string while the workout is unfinished.
func (state State) Summary() string {
	if !state.Complete() {
		return ""
	}
	if state.Mode == ModeSets {
		return fmt.Sprintf("Excellent! You finished all %d sets.", state.TargetSets)
	}
	return fmt.Sprintf("Great job! You completed %d sets in %d minutes.", state.CurrentSets, state.TimerDuration/60)
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func initialState(config model.WorkoutConfig) State {
	state := State{
		Mode:          ModeTimer,
		TimerDuration: model.ClampTimerDuration(config.TimerDurationSeconds),
		TargetSets:    model.ClampTargetSets(config.TargetSets),
	}
	if config.StartInSetsMode {
		state.Mode = ModeSets
	}
	state.resetCounters()
	return state
}

func (state *State) resetCounters() {
	if state.Mode == ModeSets {
		state.CurrentTime = 0
		state.CurrentSets = state.TargetSets
		return
	}
	state.CurrentTime = state.TimerDuration
	state.CurrentSets = 0
}

func (state *State) clearBreak() {
	state.IsOnBreak = false
	state.BreakTime = 0
	state.BreakDuration = 0
}
