package notify

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// ErrAudioUnavailable indicates the audio device could not be opened.
var ErrAudioUnavailable = errors.New("audio output unavailable")

// output abstracts the process-wide speaker.
type output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Clear()
	Play(streamer beep.Streamer)
}

type systemSpeaker struct{}

func (systemSpeaker) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

func (systemSpeaker) Clear() {
	speaker.Clear()
}

func (systemSpeaker) Play(streamer beep.Streamer) {
	speaker.Play(streamer)
}

// SoundCue plays an embedded WAV clip. The clip is decoded and the speaker
// opened on the first Play.
type SoundCue struct {
	mu      sync.Mutex
	data    []byte
	output  output
	enabled bool
	volume  float64

	initOnce sync.Once
	initErr  error
	buffer   *beep.Buffer
}

// NewSoundCue creates a cue for the given WAV data.
func NewSoundCue(data []byte) *SoundCue {
	return newSoundCue(data, systemSpeaker{})
}

func newSoundCue(data []byte, out output) *SoundCue {
	return &SoundCue{
		data:    data,
		output:  out,
		enabled: true,
		volume:  1,
	}
}

// SetEnabled turns the cue on or off.
func (cue *SoundCue) SetEnabled(enabled bool) {
	cue.mu.Lock()
	cue.enabled = enabled
	cue.mu.Unlock()
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (cue *SoundCue) SetVolume(volume float64) {
	cue.mu.Lock()
	cue.volume = math.Max(0, math.Min(1, volume))
	cue.mu.Unlock()
}

// Volume returns the playback volume.
func (cue *SoundCue) Volume() float64 {
	cue.mu.Lock()
	defer cue.mu.Unlock()
	return cue.volume
}

// Play restarts the clip from the beginning, cutting off any playback in progress.
func (cue *SoundCue) Play() error {
	cue.mu.Lock()
	enabled, volume := cue.enabled, cue.volume
	cue.mu.Unlock()
	if !enabled {
		return nil
	}

	cue.initOnce.Do(func() {
		cue.initErr = cue.load()
	})
	if cue.initErr != nil {
		return cue.initErr
	}

	streamer := cue.buffer.Streamer(0, cue.buffer.Len())
	cue.output.Clear()
	cue.output.Play(withVolume(streamer, volume))
	return nil
}

func (cue *SoundCue) load() error {
	streamer, format, err := wav.Decode(bytes.NewReader(cue.data))
	if err != nil {
		return fmt.Errorf("decode break cue: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	if err := cue.output.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	cue.buffer = buffer
	return nil
}

// withVolume maps a linear volume in [0, 1] onto beep's base-2 gain.
func withVolume(streamer beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1 {
		return streamer
	}
	return &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-6)),
		Silent:   volume <= 0,
	}
}
