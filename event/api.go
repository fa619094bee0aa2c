package event

import "github.com/lixenwraith/void-siege/core"

// Emitter stamps events with the current frame before pushing them
// A nil Emitter or nil queue drops every event
type Emitter struct {
	Queue *EventQueue
	Frame func() int64
}

func (e *Emitter) push(t EventType, payload any) {
	if e == nil || e.Queue == nil {
		return
	}
	var frame int64
	if e.Frame != nil {
		frame = e.Frame()
	}
	e.Queue.Push(GameEvent{Type: t, Payload: payload, Frame: frame})
}

// Emit pushes an event with an arbitrary payload
func (e *Emitter) Emit(t EventType, payload any) {
	e.push(t, payload)
}

// Sound requests a sound effect
func (e *Emitter) Sound(s core.SoundType) {
	e.push(EventSoundRequest, &SoundRequestPayload{SoundType: s})
}

// Explosion requests an explosion flash using a pooled payload
func (e *Emitter) Explosion(x, y int, enemy, large bool) {
	if e == nil || e.Queue == nil {
		return
	}
	p := AcquireExplosion()
	p.X, p.Y, p.Enemy, p.Large = x, y, enemy, large
	e.push(EventExplosion, p)
}
