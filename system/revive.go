package system

import (
	"log"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/parameter"
)

// RevivePhase is the encounter lifecycle around team elimination
type RevivePhase uint8

const (
	RevivePlaying RevivePhase = iota
	RevivePrompt
	ReviveResult
	ReviveExiting
)

func (p RevivePhase) String() string {
	switch p {
	case RevivePrompt:
		return "REVIVE_PROMPT"
	case ReviveResult:
		return "REVIVE_RESULT"
	case ReviveExiting:
		return "EXITING"
	default:
		return "PLAYING"
	}
}

// ReviveFailure is why a revive attempt was refused
type ReviveFailure uint8

const (
	ReviveOK ReviveFailure = iota
	ReviveAlreadyRevived
	ReviveInsufficientCoins
	ReviveUnavailable
)

// Message returns the text shown on the result screen
func (f ReviveFailure) Message() string {
	switch f {
	case ReviveAlreadyRevived:
		return "It's already revived at this level"
	case ReviveInsufficientCoins:
		return "You don't have enough coins"
	case ReviveUnavailable:
		return "You can't revive"
	default:
		return ""
	}
}

// ReviveHost is the encounter side of the revive flow
type ReviveHost interface {
	// OnReviveSuccess runs after a life was restored; the host clears its level-finished flags
	OnReviveSuccess()
	// OnReviveRejected runs when the player declines the prompt
	OnReviveRejected()
	// OnReviveFailureAcknowledged runs when the player dismisses a failure
	OnReviveFailureAcknowledged()
}

// ReviveInput is the per-tick edge-triggered menu input
type ReviveInput struct {
	Up      bool
	Down    bool
	Confirm bool
}

// Selection indices on the prompt
const (
	ReviveSelectYes = 0
	ReviveSelectNo  = 1
)

// ReviveFlow is the revive state machine of one encounter
type ReviveFlow struct {
	state  *engine.GameState
	host   ReviveHost
	events *event.Emitter
	cost   int

	phase     RevivePhase
	selection int
	failure   ReviveFailure
}

// NewReviveFlow starts in PLAYING
func NewReviveFlow(state *engine.GameState, host ReviveHost, events *event.Emitter) *ReviveFlow {
	return &ReviveFlow{
		state:  state,
		host:   host,
		events: events,
		cost:   parameter.ReviveCost,
	}
}

func (r *ReviveFlow) Phase() RevivePhase     { return r.phase }
func (r *ReviveFlow) Selection() int         { return r.selection }
func (r *ReviveFlow) Failure() ReviveFailure { return r.failure }

// Suspended reports whether combat ticking must pause for the prompt or result
func (r *ReviveFlow) Suspended() bool {
	return r.phase == RevivePrompt || r.phase == ReviveResult
}

// Enter opens the prompt with accept preselected, only from PLAYING
func (r *ReviveFlow) Enter() {
	if r.phase != RevivePlaying {
		return
	}
	r.phase = RevivePrompt
	r.selection = ReviveSelectYes
	r.failure = ReviveOK
}

// Exit moves to EXITING without host callbacks, used when the encounter ends normally
func (r *ReviveFlow) Exit() {
	r.phase = ReviveExiting
}

// Update applies one tick of menu input
func (r *ReviveFlow) Update(in ReviveInput) {
	switch r.phase {
	case RevivePrompt:
		switch {
		case in.Up:
			r.selection = ReviveSelectYes
		case in.Down:
			r.selection = ReviveSelectNo
		case in.Confirm:
			r.confirm()
		}
	case ReviveResult:
		if in.Confirm {
			r.phase = ReviveExiting
			r.emit(false)
			if r.host != nil {
				r.host.OnReviveFailureAcknowledged()
			}
		}
	}
}

func (r *ReviveFlow) confirm() {
	if r.selection == ReviveSelectNo {
		r.phase = ReviveExiting
		r.emit(false)
		if r.host != nil {
			r.host.OnReviveRejected()
		}
		return
	}

	if ok, reason := r.TryRevive(); !ok {
		r.failure = reason
		r.phase = ReviveResult
		log.Printf("revive failed: %s", reason.Message())
		return
	}
	r.phase = RevivePlaying
	r.emit(true)
	log.Printf("revive granted at level %d, lives now: %d", r.state.Level, r.state.LivesRemaining())
	if r.host != nil {
		r.host.OnReviveSuccess()
	}
}

// TryRevive spends the cost and restores one life when allowed
// Refusals leave coins and lives untouched
func (r *ReviveFlow) TryRevive() (bool, ReviveFailure) {
	gs := r.state
	switch {
	case gs.HasRevivedAt(gs.Level):
		return false, ReviveAlreadyRevived
	case gs.TotalCoins() < r.cost:
		return false, ReviveInsufficientCoins
	case gs.TeamAlive():
		return false, ReviveUnavailable
	}
	if !gs.SpendCoins(r.cost) {
		return false, ReviveInsufficientCoins
	}
	gs.MarkRevived(gs.Level)
	// Team pool in shared mode, player 1 otherwise
	gs.GrantLife(0)
	return true, ReviveOK
}

func (r *ReviveFlow) emit(success bool) {
	r.events.Emit(event.EventReviveResolved, &event.RevivePayload{Success: success, Reason: r.failure.Message()})
}
