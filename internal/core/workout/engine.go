package workout

import (
	"sync"
	"time"

	"workouttimer/internal/core/model"
	"workouttimer/internal/logger"

	"github.com/google/uuid"
)

// Gateway receives the break-finished side effects. Implementations must not block.
type Gateway interface {
	PlayBreakFinishedCue()
	NotifyBreakFinished()
}

// Options contains collaborators for the Engine.
type Options struct {
	Gateway Gateway
	Logger  *logger.Logger
}

// Engine is the workout state machine. Commands and ticks are serialized.
type Engine struct {
	mu         sync.Mutex
	state      State
	breakID    string
	active     bool
	gateway    Gateway
	log        *logger.Logger
	events     []chan Event
	onActivity func(active bool)
	now        func() time.Time
}

type mutation struct {
	events        []EventType
	breakFinished bool
}

// New creates an Engine with the provided starting configuration.
func New(config model.WorkoutConfig, options Options) *Engine {
	if options.Logger == nil {
		options.Logger = logger.Nop()
	}
	return &Engine{
		state:   initialState(config),
		gateway: options.Gateway,
		log:     options.Logger,
		now:     time.Now,
	}
}

// State returns a snapshot of the current workout.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// Active reports whether the primary clock is running or a break is in progress.
func (engine *Engine) Active() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state.Active()
}

// OnActivityChange registers fn to be called whenever Active flips.
func (engine *Engine) OnActivityChange(fn func(active bool)) {
	engine.mu.Lock()
	engine.onActivity = fn
	engine.mu.Unlock()
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (engine *Engine) Close() {
	engine.mu.Lock()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// SetMode switches the primary metric and resets the counters. Break state is untouched.
func (engine *Engine) SetMode(mode Mode) {
	if !mode.Valid() {
		return
	}
	engine.apply(func(state *State) mutation {
		state.Mode = mode
		state.IsRunning = false
		state.resetCounters()
		return changed(EventStateChange)
	})
}

// SetTimerDuration sets the countdown length, clamped to one minute through one hour.
func (engine *Engine) SetTimerDuration(seconds int) {
	engine.apply(func(state *State) mutation {
		state.setTimerDuration(seconds)
		return changed(EventStateChange)
	})
}

// AdjustTimerDuration moves the countdown length by whole minutes.
func (engine *Engine) AdjustTimerDuration(deltaMinutes int) {
	engine.apply(func(state *State) mutation {
		minutes := model.ClampTimerMinutes(state.TimerDuration/60 + deltaMinutes)
		state.setTimerDuration(minutes * 60)
		return changed(EventStateChange)
	})
}

// SetTargetSets sets the set goal, clamped to [1, 100].
func (engine *Engine) SetTargetSets(count int) {
	engine.apply(func(state *State) mutation {
		state.setTargetSets(count)
		return changed(EventStateChange)
	})
}

// AdjustTargetSets moves the set goal by delta.
func (engine *Engine) AdjustTargetSets(delta int) {
	engine.apply(func(state *State) mutation {
		state.setTargetSets(state.TargetSets + delta)
		return changed(EventStateChange)
	})
}

// StartStop toggles the primary clock.
func (engine *Engine) StartStop() {
	engine.apply(func(state *State) mutation {
		state.IsRunning = !state.IsRunning
		return changed(EventStateChange)
	})
}

// Reset stops the clock, restores the mode defaults and clears any break.
func (engine *Engine) Reset() {
	engine.apply(func(state *State) mutation {
		state.IsRunning = false
		state.resetCounters()
		state.clearBreak()
		engine.breakID = ""
		return changed(EventStateChange)
	})
}

// StartBreak begins a break of duration seconds and records a set.
// Calling it during a break overwrites the running break. Non-positive durations are ignored.
func (engine *Engine) StartBreak(duration int) {
	if duration <= 0 {
		return
	}
	engine.apply(func(state *State) mutation {
		state.IsOnBreak = true
		state.BreakTime = duration
		state.BreakDuration = duration
		if state.Mode == ModeSets {
			state.CurrentSets = max(0, state.CurrentSets-1)
			state.CurrentTime = 0
		} else {
			state.CurrentSets++
		}
		engine.breakID = uuid.NewString()
		return changed(EventBreakStarted)
	})
}

// EndBreak cancels the break early. No side effects fire.
func (engine *Engine) EndBreak() {
	engine.apply(func(state *State) mutation {
		if !state.IsOnBreak {
			return mutation{}
		}
		state.clearBreak()
		return changed(EventBreakEnded)
	})
}

// Tick advances the primary clock by one second.
func (engine *Engine) Tick() {
	engine.apply(func(state *State) mutation {
		if !state.IsRunning {
			return mutation{}
		}
		if state.Mode == ModeSets {
			if state.IsOnBreak {
				return mutation{}
			}
			state.CurrentTime++
			return changed(EventTick)
		}

		state.CurrentTime = max(0, state.CurrentTime-1)
		state.IsRunning = state.CurrentTime > 0
		if !state.IsRunning {
			return changed(EventStateChange)
		}
		return changed(EventTick)
	})
}

// BreakTick advances the break clock by one second. The break finishing
// triggers the gateway exactly once.
func (engine *Engine) BreakTick() {
	engine.apply(func(state *State) mutation {
		if !state.IsOnBreak {
			return mutation{}
		}
		state.BreakTime = max(0, state.BreakTime-1)
		if state.BreakTime > 0 {
			return changed(EventTick)
		}
		state.clearBreak()
		return mutation{events: []EventType{EventBreakFinished}, breakFinished: true}
	})
}

func changed(eventType EventType) mutation {
	return mutation{events: []EventType{eventType}}
}

func (engine *Engine) apply(fn func(state *State) mutation) {
	engine.mu.Lock()
	result := fn(&engine.state)
	at := engine.now()
	for _, eventType := range result.events {
		engine.emitLocked(Event{
			Type:    eventType,
			State:   engine.state,
			BreakID: engine.breakID,
			At:      at,
		})
	}
	if !engine.state.IsOnBreak {
		engine.breakID = ""
	}

	active := engine.state.Active()
	activityChanged := active != engine.active
	engine.active = active
	onActivity := engine.onActivity
	gateway := engine.gateway
	engine.mu.Unlock()

	if result.breakFinished {
		engine.fireBreakFinished(gateway)
	}
	if activityChanged && onActivity != nil {
		onActivity(active)
	}
}

func (engine *Engine) fireBreakFinished(gateway Gateway) {
	if gateway == nil {
		return
	}
	engine.invokeSafely("play break finished cue", gateway.PlayBreakFinishedCue)
	engine.invokeSafely("notify break finished", gateway.NotifyBreakFinished)
}

func (engine *Engine) invokeSafely(action string, fn func()) {
	defer func() {
		if recovered := recover(); recovered != nil {
			engine.log.Errorw("side effect panicked", "action", action, "panic", recovered)
		}
	}()
	fn()
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (state *State) setTimerDuration(seconds int) {
	state.TimerDuration = model.ClampTimerDuration(seconds)
	if state.Mode == ModeTimer && !state.IsRunning {
		state.CurrentTime = state.TimerDuration
	}
}

func (state *State) setTargetSets(count int) {
	state.TargetSets = model.ClampTargetSets(count)
	if state.Mode == ModeSets {
		state.CurrentSets = state.TargetSets
	}
}
