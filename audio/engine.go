package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/void-siege/core"
)

// output abstracts the speaker so tests can pull samples from the mixer directly
type output struct {
	init   func(beep.SampleRate, int) error
	play   func(...beep.Streamer)
	lock   func()
	unlock func()
	close  func()
}

func speakerOutput() output {
	return output{
		init:   speaker.Init,
		play:   speaker.Play,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
		close:  speaker.Close,
	}
}

// AudioEngine mixes fire-and-forget sound effects into the speaker
type AudioEngine struct {
	mu     sync.RWMutex // Protects config
	config *AudioConfig
	cache  *soundCache
	mixer  *beep.Mixer
	out    output

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
	played     atomic.Int64
}

// NewAudioEngine creates an engine; nil config uses defaults
func NewAudioEngine(cfg *AudioConfig) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	ae := &AudioEngine{
		config: cfg,
		cache:  newSoundCache(beep.SampleRate(cfg.SampleRate)),
		mixer:  &beep.Mixer{},
		out:    speakerOutput(),
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start opens the speaker and starts the mixer
// On speaker failure the engine still runs in silent mode and the wrapped ErrNotInitialized is returned
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	rate := beep.SampleRate(ae.config.SampleRate)
	if err := ae.out.init(rate, rate.N(100*time.Millisecond)); err != nil {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return fmt.Errorf("%w: %v", ErrNotInitialized, err)
	}

	ae.cache.preload()
	ae.out.play(ae.mixer)
	ae.running.Store(true)
	return nil
}

// Stop clears the mixer and closes the speaker
func (ae *AudioEngine) Stop() {
	if !ae.running.Swap(false) {
		return
	}
	if ae.silentMode.Load() {
		return
	}
	ae.out.lock()
	ae.mixer.Clear()
	ae.out.unlock()
	ae.out.close()
}

// Play queues a sound; returns false when not running, muted or unknown
// Silent mode accepts and discards
func (ae *AudioEngine) Play(st core.SoundType) bool {
	if !ae.running.Load() || ae.muted.Load() {
		return false
	}
	if ae.silentMode.Load() {
		return true
	}

	s := ae.cache.get(st)
	if s == nil {
		return false
	}

	ae.mu.RLock()
	vol := ae.config.EffectVolumes[st] * ae.config.MasterVolume
	ae.mu.RUnlock()

	ae.out.lock()
	ae.mixer.Add(newVolume(s, vol))
	ae.out.unlock()
	ae.played.Add(1)
	return true
}

// ToggleMute flips mute and returns the new state; muting drops sounds in flight
func (ae *AudioEngine) ToggleMute() bool {
	muted := !ae.muted.Load()
	ae.muted.Store(muted)
	if muted && ae.running.Load() && !ae.silentMode.Load() {
		ae.out.lock()
		ae.mixer.Clear()
		ae.out.unlock()
	}
	return muted
}

// SetMasterVolume updates the master volume for subsequent sounds
func (ae *AudioEngine) SetMasterVolume(v float64) {
	ae.mu.Lock()
	ae.config.MasterVolume = min(1, max(0, v))
	ae.mu.Unlock()
}

func (ae *AudioEngine) IsMuted() bool   { return ae.muted.Load() }
func (ae *AudioEngine) IsRunning() bool { return ae.running.Load() }
func (ae *AudioEngine) IsSilent() bool  { return ae.silentMode.Load() }

// Played returns the number of sounds handed to the mixer
func (ae *AudioEngine) Played() int64 {
	return ae.played.Load()
}
