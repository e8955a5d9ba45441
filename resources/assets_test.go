package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakFinishedSoundIsWav(t *testing.T) {
	data := BreakFinishedSound()
	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestSoundMissing(t *testing.T) {
	_, err := Sound("nope.wav")
	assert.Error(t, err)
}

func TestLogoIsCached(t *testing.T) {
	first, err := Logo(appIcon)
	require.NoError(t, err)
	second, err := Logo(appIcon)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, appIcon, first.Name())
	assert.NotEmpty(t, AppIcon().Content())
}
