package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		-3:   "00:00",
		0:    "00:00",
		9:    "00:09",
		61:   "01:01",
		1200: "20:00",
		3600: "60:00",
	}
	for seconds, want := range cases {
		assert.Equal(t, want, FormatClock(seconds))
	}
}

func TestStateComplete(t *testing.T) {
	assert.True(t, State{Mode: ModeTimer, CurrentTime: 0, CurrentSets: 4}.Complete())
	assert.False(t, State{Mode: ModeTimer, CurrentTime: 1}.Complete())
	assert.True(t, State{Mode: ModeSets, CurrentTime: 30, CurrentSets: 0}.Complete())
	assert.False(t, State{Mode: ModeSets, CurrentSets: 2}.Complete())
}

func TestStateSummary(t *testing.T) {
	assert.Empty(t, State{Mode: ModeTimer, CurrentTime: 10}.Summary())
	assert.Equal(t,
		"Great job! You completed 7 sets in 20 minutes.",
		State{Mode: ModeTimer, TimerDuration: 1200, CurrentSets: 7}.Summary())
	assert.Equal(t,
		"Excellent! You finished all 12 sets.",
		State{Mode: ModeSets, TargetSets: 12}.Summary())
}

func TestModeValid(t *testing.T) {
	assert.True(t, ModeTimer.Valid())
	assert.True(t, ModeSets.Valid())
	assert.False(t, Mode("").Valid())
}
