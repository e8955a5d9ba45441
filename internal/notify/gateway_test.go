package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type cueStub struct {
	mu    sync.Mutex
	plays int
	err   error
	panic bool
}

func (stub *cueStub) Play() error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.plays++
	if stub.panic {
		panic("speaker exploded")
	}
	return stub.err
}

func (stub *cueStub) count() int {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return stub.plays
}

type notifierStub struct {
	mu       sync.Mutex
	received []Notification
	err      error
}

func (stub *notifierStub) Notify(ctx context.Context, notification Notification) error {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	stub.received = append(stub.received, notification)
	return stub.err
}

func (stub *notifierStub) notifications() []Notification {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return append([]Notification(nil), stub.received...)
}

func TestGateway_InvokesBothNotifiers(t *testing.T) {
	cue := &cueStub{}
	notifier := &notifierStub{}
	gateway := NewGateway(cue, notifier, nil)

	gateway.PlayBreakFinishedCue()
	gateway.NotifyBreakFinished()
	gateway.Wait()

	assert.Equal(t, 1, cue.count())
	assert.Equal(t, []Notification{BreakFinished}, notifier.notifications())
}

func TestGateway_FailuresAreIsolated(t *testing.T) {
	cases := []struct {
		name     string
		cue      *cueStub
		notifier *notifierStub
	}{
		{name: "cue error", cue: &cueStub{err: ErrAudioUnavailable}, notifier: &notifierStub{}},
		{name: "cue panic", cue: &cueStub{panic: true}, notifier: &notifierStub{}},
		{name: "notifier error", cue: &cueStub{}, notifier: &notifierStub{err: errors.New("denied")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := NewGateway(tc.cue, tc.notifier, nil)

			assert.NotPanics(t, func() {
				gateway.PlayBreakFinishedCue()
				gateway.NotifyBreakFinished()
				gateway.Wait()
			})

			assert.Equal(t, 1, tc.cue.count())
			assert.Len(t, tc.notifier.notifications(), 1)
		})
	}
}

func TestGateway_NilCollaboratorsAreSkipped(t *testing.T) {
	gateway := NewGateway(nil, nil, nil)

	assert.NotPanics(t, func() {
		gateway.PlayBreakFinishedCue()
		gateway.NotifyBreakFinished()
		gateway.Wait()
	})
}
