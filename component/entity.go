package component

import "github.com/lixenwraith/void-siege/core"

// Entity is the positioned, team-tagged base of every playfield object
type Entity struct {
	core.Rect
	Team      core.Team
	Destroyed bool
}

// Bounds returns the hitbox
func (e *Entity) Bounds() core.Rect {
	return e.Rect
}

// SetPosition moves the top-left corner
func (e *Entity) SetPosition(x, y int) {
	e.X, e.Y = x, y
}

// Overlaps runs the center proximity test against another entity
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Rect.Overlaps(o.Rect)
}
