package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPortFromName(t *testing.T) {
	port := portFromName("WorkoutTimer")
	assert.Equal(t, port, portFromName("WorkoutTimer"))
	assert.GreaterOrEqual(t, port, minPort)
	assert.LessOrEqual(t, port, maxPort)
}

func TestAcquireSingleInstance_SecondLaunchActivatesFirst(t *testing.T) {
	name := fmt.Sprintf("workout-test-%d", time.Now().UnixNano())
	first, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer func() { require.NoError(t, first.Release()) }()

	activated := make(chan struct{}, 1)
	first.OnActivate(func() { activated <- struct{}{} })

	second, err := AcquireSingleInstance(name)
	assert.Nil(t, second)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestAcquireSingleInstance_ReacquireAfterRelease(t *testing.T) {
	name := fmt.Sprintf("workout-release-%d", time.Now().UnixNano())
	first, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, addressFor(name), first.Address())
	require.NoError(t, first.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestInstanceGuard_NilSafe(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Equal(t, "", guard.Address())
}
