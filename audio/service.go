package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/status"
)

// AudioPlayer defines the minimal audio interface used by the game loop
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioService owns the engine and routes sound requests from the event queue
// Handles graceful degradation when no speaker is available
type AudioService struct {
	engine *AudioEngine

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
	statMuted   *atomic.Bool
}

// NewService creates a service over the config; reg may be nil
func NewService(cfg *AudioConfig, reg *status.Registry) *AudioService {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &AudioService{
		engine:      NewAudioEngine(cfg),
		statPlayed:  reg.Ints.Get("audio.played"),
		statDropped: reg.Ints.Get("audio.dropped"),
		statMuted:   reg.Bools.Get("audio.muted"),
	}
}

// Start launches the engine
// On speaker failure the service stays usable in silent mode and the wrapped ErrNotInitialized is returned
func (s *AudioService) Start() error {
	err := s.engine.Start()
	s.statMuted.Store(s.engine.IsMuted())
	return err
}

// Stop closes the speaker
func (s *AudioService) Stop() {
	s.engine.Stop()
}

// Player returns the engine as an AudioPlayer, nil when not running
func (s *AudioService) Player() AudioPlayer {
	if !s.engine.IsRunning() {
		return nil
	}
	return s.engine
}

// IsSilent reports whether the speaker could not be opened
func (s *AudioService) IsSilent() bool {
	return s.engine.IsSilent()
}

// ToggleMute flips mute on the engine
func (s *AudioService) ToggleMute() bool {
	muted := s.engine.ToggleMute()
	s.statMuted.Store(muted)
	return muted
}

// HandleEvents plays every sound request in the batch and ignores other events
func (s *AudioService) HandleEvents(events []event.GameEvent) {
	for _, ev := range events {
		if ev.Type != event.EventSoundRequest {
			continue
		}
		p, ok := ev.Payload.(*event.SoundRequestPayload)
		if !ok {
			continue
		}
		if s.engine.Play(p.SoundType) {
			s.statPlayed.Add(1)
		} else {
			s.statDropped.Add(1)
		}
	}
}
