package render

import (
	"time"

	"github.com/lixenwraith/void-siege/achievement"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/system"
)

// ReviveView is the revive prompt as the overlay shows it
type ReviveView struct {
	Phase     system.RevivePhase
	Selection int
	Message   string // Failure reason on the result screen
}

// Frame is the per-tick view of an encounter, rebuilt by the host before each render
type Frame struct {
	Field       *system.Field
	State       *engine.GameState
	Inventories [parameter.NumPlayers]*system.Inventory

	BossLevel bool
	Countdown int // Whole seconds until input opens, -1 when hidden
	BonusLife bool

	Messages        []string
	Toasts          []achievement.Toast
	HighScoreNotice bool
	Paused          bool
	Revive          ReviveView

	BossElapsed time.Duration
	Muted       bool
}

// NewFrame returns a frame with nothing on the overlays
func NewFrame(field *system.Field) *Frame {
	f := &Frame{Field: field, Countdown: -1}
	if field != nil {
		f.State = field.State
	}
	return f
}

// Reset clears the per-tick overlay fields, keeping the field and state
func (f *Frame) Reset() {
	*f = Frame{Field: f.Field, State: f.State, Inventories: f.Inventories, BossLevel: f.BossLevel, Countdown: -1}
}
