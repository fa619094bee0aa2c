package audio

import (
	"errors"

	"github.com/lixenwraith/void-siege/core"
)

// ErrNotInitialized is returned when the speaker could not be opened; the engine runs silent
var ErrNotInitialized = errors.New("audio not initialized")

// AudioConfig holds audio system configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultAudioConfig returns default configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: [core.SoundTypeCount]float64{
			core.SoundShoot:         0.4,
			core.SoundExplosion:     0.9,
			core.SoundInvaderKilled: 0.6,
			core.SoundPickup:        0.7,
			core.SoundCountdown:     0.8,
			core.SoundBossHit:       0.6,
			core.SoundShieldDeflect: 0.5,
			core.SoundPhase2:        1.0,
			core.SoundLose:          1.0,
		},
	}
}

// NewAudioConfig builds a config over the defaults; volumes are keyed by sound name
// Unknown names are ignored
func NewAudioConfig(enabled bool, master float64, sampleRate int, volumes map[string]float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = min(1, max(0, master))
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if v, ok := volumes[st.String()]; ok {
			cfg.EffectVolumes[st] = min(1, max(0, v))
		}
	}
	return cfg
}
