package system

import (
	"math/rand"
	"slices"
	"time"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

// FormationSettings sizes and paces one group of enemies
type FormationSettings struct {
	Width            int
	Height           int
	BaseSpeed        int // Frames between steps with the group at full strength
	ShootingInterval time.Duration
}

// FormationLayout places and bounds a group on the playfield
type FormationLayout struct {
	OriginX, OriginY int
	MinX, MaxX       int // Horizontal travel limits for ship edges
	FloorY           int // Lowest top edge the group may descend to
	Descent          int // Pixels dropped per turn, zero keeps the group on its row
	Kind             func(row int) component.EnemyKind
}

// WaveKinds assigns heavy ships to the top row, medium to the next, light to the rest
func WaveKinds(row int) component.EnemyKind {
	switch row {
	case 0:
		return component.EnemyHeavy
	case 1:
		return component.EnemyMedium
	default:
		return component.EnemyLight
	}
}

// MinionKinds makes every ship a boss minion
func MinionKinds(int) component.EnemyKind {
	return component.EnemyMinion
}

// Formation is a grid of enemy ships moving as one block
// Iteration order is column-major, the order the resolver tests bullets in
type Formation struct {
	columns [][]*component.EnemyShip
	total   int
	alive   int

	settings  FormationSettings
	layout    FormationLayout
	direction int
	counter   int

	shooting *engine.Cooldown
	rng      *rand.Rand
	emitter  BulletEmitter
}

// NewFormation creates a full grid; emitter receives shots, rng picks shooters
func NewFormation(settings FormationSettings, layout FormationLayout, clock engine.TimeProvider, rng *rand.Rand, emitter BulletEmitter) *Formation {
	if layout.Kind == nil {
		layout.Kind = WaveKinds
	}
	f := &Formation{
		settings:  settings,
		layout:    layout,
		direction: 1,
		shooting:  engine.NewCooldown(clock, settings.ShootingInterval),
		rng:       rng,
		emitter:   emitter,
	}
	f.columns = make([][]*component.EnemyShip, settings.Width)
	for c := range settings.Width {
		col := make([]*component.EnemyShip, 0, settings.Height)
		for r := range settings.Height {
			x := layout.OriginX + c*parameter.FormationSeparation
			y := layout.OriginY + r*parameter.FormationSeparation
			col = append(col, component.NewEnemyShip(layout.Kind(r), x, y))
		}
		f.columns[c] = col
	}
	f.total = settings.Width * settings.Height
	f.alive = f.total
	// First volley waits a full interval
	f.shooting.Reset()
	return f
}

// Count returns live ships, satisfying MinionCounter
func (f *Formation) Count() int {
	if f == nil {
		return 0
	}
	return f.alive
}

// Empty reports whether every ship is gone
func (f *Formation) Empty() bool {
	return f.Count() == 0
}

// Ships returns live ships in resolver order
func (f *Formation) Ships() []*component.EnemyShip {
	if f == nil {
		return nil
	}
	out := make([]*component.EnemyShip, 0, f.alive)
	for _, col := range f.columns {
		for _, s := range col {
			if !s.Destroyed {
				out = append(out, s)
			}
		}
	}
	return out
}

// Destroy removes a ship from the grid
func (f *Formation) Destroy(ship *component.EnemyShip) {
	for c, col := range f.columns {
		if i := slices.Index(col, ship); i >= 0 {
			ship.Destroyed = true
			f.columns[c] = slices.Delete(col, i, i+1)
			f.alive--
			return
		}
	}
}

// Clear destroys every remaining ship and returns how many were removed
func (f *Formation) Clear() int {
	if f == nil {
		return 0
	}
	n := f.alive
	for c, col := range f.columns {
		for _, s := range col {
			s.Destroyed = true
		}
		f.columns[c] = col[:0]
	}
	f.alive = 0
	return n
}

// stepFrames shortens the cadence as the group thins out
func (f *Formation) stepFrames() int {
	if f.total == 0 {
		return f.settings.BaseSpeed
	}
	return max(parameter.FormationMinStepFrames, f.settings.BaseSpeed*f.alive/f.total)
}

// Update advances the block one tick
func (f *Formation) Update() {
	if f.alive == 0 {
		return
	}
	f.counter++
	if f.counter < f.stepFrames() {
		return
	}
	f.counter = 0

	minX, maxX, maxY := f.extent()
	dx := f.direction * parameter.FormationStepX
	dy := 0
	if maxX+dx > f.layout.MaxX || minX+dx < f.layout.MinX {
		f.direction = -f.direction
		dx = 0
		if maxY+f.layout.Descent <= f.layout.FloorY {
			dy = f.layout.Descent
		}
	}
	for _, col := range f.columns {
		for _, s := range col {
			s.X += dx
			s.Y += dy
		}
	}
}

func (f *Formation) extent() (minX, maxX, maxY int) {
	first := true
	for _, col := range f.columns {
		for _, s := range col {
			if first {
				minX, maxX, maxY = s.X, s.X+s.W, s.Y
				first = false
				continue
			}
			minX = min(minX, s.X)
			maxX = max(maxX, s.X+s.W)
			maxY = max(maxY, s.Y)
		}
	}
	return minX, maxX, maxY
}

// Shoot fires from the bottom ship of a random column once the interval has passed
func (f *Formation) Shoot() bool {
	if f.alive == 0 || f.emitter == nil || !f.shooting.Finished() {
		return false
	}
	candidates := make([]*component.EnemyShip, 0, len(f.columns))
	for _, col := range f.columns {
		if n := len(col); n > 0 {
			candidates = append(candidates, col[n-1])
		}
	}
	shooter := candidates[f.rng.Intn(len(candidates))]
	f.emitter.Fire(shooter.CenterX(), shooter.Y+shooter.H, 0, parameter.EnemyBulletSpeed)
	f.shooting.Reset()
	return true
}
