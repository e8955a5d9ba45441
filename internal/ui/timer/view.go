package timer

import (
	"fmt"
	"strconv"

	"workouttimer/internal/core/workout"
)

const (
	adjustMinutesStep = 5
	adjustSetsStep    = 5
)

// viewModel is the text and enablement derived from one engine snapshot.
type viewModel struct {
	Clock          string
	ClockVisible   bool
	BreakClock     string
	BreakVisible   bool
	Sets           string
	SetsLabel      string
	Summary        string
	PlayLabel      string
	PlayEnabled    bool
	ModeEnabled    bool
	AdjustEnabled  bool
	AdjustValue    string
	AdjustTitle    string
	AdjustUnit     string
	BreaksEnabled  bool
	BreaksTitle    string
	ConcurrentNote bool
}

func newViewModel(state workout.State) viewModel {
	complete := state.Complete()
	idle := !state.IsRunning && !state.IsOnBreak

	model := viewModel{
		Clock:          workout.FormatClock(state.CurrentTime),
		ClockVisible:   state.Mode == workout.ModeTimer,
		BreakClock:     workout.FormatClock(state.BreakTime),
		BreakVisible:   state.IsOnBreak,
		Summary:        state.Summary(),
		PlayLabel:      "Start",
		PlayEnabled:    !state.IsOnBreak && !complete,
		ModeEnabled:    idle,
		AdjustEnabled:  idle,
		BreaksEnabled:  state.IsRunning && !state.IsOnBreak,
		BreaksTitle:    "Break Duration",
		ConcurrentNote: state.IsOnBreak && state.Mode == workout.ModeTimer,
	}
	if state.IsRunning {
		model.PlayLabel = "Pause"
	}
	if state.IsOnBreak {
		model.BreaksTitle = "Break in Progress..."
	}

	if state.Mode == workout.ModeTimer {
		model.Sets = strconv.Itoa(state.CurrentSets)
		model.SetsLabel = "Sets Completed"
		model.AdjustTitle = "Timer Duration"
		model.AdjustValue = strconv.Itoa(state.TimerDuration / 60)
		model.AdjustUnit = "minutes"
	} else {
		model.Sets = fmt.Sprintf("%d / %d", state.CurrentSets, state.TargetSets)
		model.SetsLabel = "Sets Remaining"
		model.AdjustTitle = "Target Sets"
		model.AdjustValue = strconv.Itoa(state.TargetSets)
		model.AdjustUnit = "sets"
	}
	return model
}

// adjust applies a +/- tap to whichever setting the current mode exposes.
func adjust(engine *workout.Engine, mode workout.Mode, direction int) {
	if mode == workout.ModeSets {
		engine.AdjustTargetSets(direction * adjustSetsStep)
		return
	}
	engine.AdjustTimerDuration(direction * adjustMinutesStep)
}

func otherMode(mode workout.Mode) workout.Mode {
	if mode == workout.ModeTimer {
		return workout.ModeSets
	}
	return workout.ModeTimer
}

// StatusLine is the one-line summary shown in the tray menu.
func StatusLine(state workout.State) string {
	switch {
	case state.IsOnBreak:
		return "break " + workout.FormatClock(state.BreakTime)
	case state.Complete():
		return "complete"
	case !state.IsRunning:
		return "ready"
	case state.Mode == workout.ModeSets:
		return fmt.Sprintf("%d of %d sets left", state.CurrentSets, state.TargetSets)
	default:
		return "timer " + workout.FormatClock(state.CurrentTime)
	}
}
