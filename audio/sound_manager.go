// Package audio plays short tones for game events through beep.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/spidervirus/Snake-Game/game"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone of a sound cue.
type note struct {
	freq     float64
	duration time.Duration
}

var (
	eatCue       = []note{{880, 60 * time.Millisecond}}
	powerUpCue   = []note{{660, 70 * time.Millisecond}, {990, 70 * time.Millisecond}, {1320, 90 * time.Millisecond}}
	spawnCue     = []note{{1320, 40 * time.Millisecond}}
	expireCue    = []note{{660, 60 * time.Millisecond}, {440, 80 * time.Millisecond}}
	crashCue     = []note{{220, 120 * time.Millisecond}, {110, 250 * time.Millisecond}}
	highScoreCue = []note{{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 100 * time.Millisecond}, {1046.5, 200 * time.Millisecond}}
)

// SoundManager mixes event cues into the speaker. Every method is a no-op
// until Initialize succeeds, so the game runs without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 0.3,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return errors.Wrap(err, "initializing speaker")
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Handle plays the cue for each event of a tick.
func (sm *SoundManager) Handle(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventEat:
			sm.PlayEat()
		case game.EventCrash:
			sm.PlayCrash()
		case game.EventNewHighScore:
			sm.PlayHighScore()
		case game.EventPowerUp:
			sm.PlayPowerUp()
		case game.EventPowerUpSpawned:
			sm.play(spawnCue)
		case game.EventEffectExpired:
			sm.play(expireCue)
		}
	}
}

func (sm *SoundManager) PlayEat() { sm.play(eatCue) }
func (sm *SoundManager) PlayCrash() { sm.play(crashCue) }
func (sm *SoundManager) PlayPowerUp() { sm.play(powerUpCue) }
func (sm *SoundManager) PlayHighScore() { sm.play(highScoreCue) }

func (sm *SoundManager) play(cue []note) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := cueStreamer(cue, sm.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// cueStreamer renders the notes back to back at the given volume.
func cueStreamer(cue []note, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(cue))
	for _, n := range cue {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, errors.Wrapf(err, "tone %.1f Hz", n.freq)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// newVolume scales s linearly; zero or less is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
