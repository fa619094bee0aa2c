package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/void-siege/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sliding from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from start to end frequency
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped oscillator voice
func tone(start, end float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(start, end, d, wave, rate), d, attack, release, rate)
}

// synthesize builds the unity-gain streamer of a sound
func synthesize(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch st {
	case core.SoundShoot:
		// Short falling zap
		return tone(1200, 400, 80*ms, 2*ms, 40*ms, WaveSquare, rate)

	case core.SoundExplosion:
		// Noise burst over a low rumble
		return beep.Mix(
			newVolume(tone(0, 0, 400*ms, 5*ms, 300*ms, WaveNoise, rate), 0.7),
			newVolume(tone(90, 40, 400*ms, 5*ms, 300*ms, WaveSine, rate), 0.3),
		)

	case core.SoundInvaderKilled:
		return tone(600, 150, 120*ms, 2*ms, 80*ms, WaveSaw, rate)

	case core.SoundPickup:
		// Two-note chime B5 → E6
		return beep.Seq(
			tone(987.77, 987.77, 60*ms, 2*ms, 20*ms, WaveSquare, rate),
			tone(1318.51, 1318.51, 140*ms, 2*ms, 100*ms, WaveSquare, rate),
		)

	case core.SoundCountdown:
		return tone(880, 880, 150*ms, 5*ms, 50*ms, WaveSine, rate)

	case core.SoundBossHit:
		return tone(220, 180, 70*ms, 2*ms, 40*ms, WaveSquare, rate)

	case core.SoundShieldDeflect:
		// Metallic ping, fundamental with octave overtone
		return beep.Mix(
			newVolume(tone(1760, 1760, 100*ms, 1*ms, 90*ms, WaveSine, rate), 0.7),
			newVolume(tone(3520, 3520, 100*ms, 1*ms, 60*ms, WaveSine, rate), 0.3),
		)

	case core.SoundPhase2:
		// Rising alarm
		return beep.Seq(
			tone(300, 600, 250*ms, 10*ms, 30*ms, WaveSaw, rate),
			tone(300, 600, 250*ms, 10*ms, 30*ms, WaveSaw, rate),
		)

	case core.SoundLose:
		// Long descending tone
		return tone(440, 110, 900*ms, 10*ms, 400*ms, WaveSquare, rate)

	default:
		return nil
	}
}

// GetSoundEffect returns the sound scaled by its effect volume and the master volume
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}
	s := synthesize(st, beep.SampleRate(cfg.SampleRate))
	if s == nil {
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
