package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/status"
)

// Renderer is an orchestrator with every game layer registered
type Renderer struct {
	*Orchestrator
	Explosions *ExplosionLayer
	Debug      *DebugLayer
}

// NewRenderer wires the stock layers; clock times explosion flashes
func NewRenderer(screen tcell.Screen, width, height int, clock engine.TimeProvider, reg *status.Registry) *Renderer {
	r := &Renderer{
		Orchestrator: NewOrchestrator(screen, width, height),
		Explosions:   NewExplosionLayer(clock),
		Debug:        NewDebugLayer(reg),
	}
	r.Register(BackgroundLayer{}, PriorityBackground)
	r.Register(EntityLayer{}, PriorityEntities)
	r.Register(r.Explosions, PriorityEffects)
	r.Register(HUDLayer{}, PriorityUI)
	r.Register(OverlayLayer{}, PriorityOverlay)
	r.Register(r.Debug, PriorityDebug)
	return r
}

// HandleEvents forwards visual triggers to the layers that consume them
func (r *Renderer) HandleEvents(events []event.GameEvent) {
	r.Explosions.HandleEvents(events)
}
