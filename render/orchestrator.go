package render

import "github.com/gdamore/tcell/v2"

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen   tcell.Screen
	canvas   *Canvas
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an orchestrator drawing a logical playfield of the given size
func NewOrchestrator(screen tcell.Screen, width, height int) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		canvas: NewCanvas(screen, width, height),
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{layer: l, priority: priority, index: o.regCount}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Resize re-reads the terminal size and forces a full redraw
func (o *Orchestrator) Resize() {
	o.canvas.Resize()
	o.screen.Sync()
}

// Canvas exposes the drawing surface, used by tests
func (o *Orchestrator) Canvas() *Canvas {
	return o.canvas
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *Orchestrator) RenderFrame(f *Frame) {
	o.screen.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(f, o.canvas)
	}

	o.screen.Show()
}
