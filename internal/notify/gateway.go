package notify

import (
	"context"
	"sync"
	"time"

	"workouttimer/internal/logger"
)

const notifyTimeout = 5 * time.Second

// Cue plays an audible signal.
type Cue interface {
	Play() error
}

// Notifier shows a user-visible notification.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// Gateway fans the break-finished transition out to the sound cue and the
// device notification. Each call returns immediately; failures are logged.
type Gateway struct {
	cue      Cue
	notifier Notifier
	log      *logger.Logger
	wg       sync.WaitGroup
}

// NewGateway creates a Gateway. A nil cue or notifier disables that side effect.
func NewGateway(cue Cue, notifier Notifier, log *logger.Logger) *Gateway {
	if log == nil {
		log = logger.Nop()
	}
	return &Gateway{cue: cue, notifier: notifier, log: log}
}

// PlayBreakFinishedCue plays the break-finished sound in the background.
func (gateway *Gateway) PlayBreakFinishedCue() {
	if gateway.cue == nil {
		return
	}
	gateway.launch("play break finished cue", func() error {
		return gateway.cue.Play()
	})
}

// NotifyBreakFinished shows the break-finished notification in the background.
func (gateway *Gateway) NotifyBreakFinished() {
	if gateway.notifier == nil {
		return
	}
	gateway.launch("send break finished notification", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		return gateway.notifier.Notify(ctx, BreakFinished)
	})
}

// Wait blocks until all launched side effects have returned.
func (gateway *Gateway) Wait() {
	gateway.wg.Wait()
}

func (gateway *Gateway) launch(action string, fn func() error) {
	gateway.wg.Add(1)
	go func() {
		defer gateway.wg.Done()
		defer func() {
			if recovered := recover(); recovered != nil {
				gateway.log.Errorw("side effect panicked", "action", action, "panic", recovered)
			}
		}()
		if err := fn(); err != nil {
			gateway.log.Warnw("side effect failed", "action", action, "err", err)
		}
	}()
}
