package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/status"
)

// BossPhase is the boss encounter state, P2 is terminal
type BossPhase uint8

const (
	BossPhase1 BossPhase = iota
	BossPhase2
)

func (p BossPhase) String() string {
	if p == BossPhase2 {
		return "P2"
	}
	return "P1"
}

// MinionCounter supplies the number of live minions shielding the boss
type MinionCounter interface {
	Count() int
}

// MinionCounterFunc adapts a function to MinionCounter
type MinionCounterFunc func() int

func (f MinionCounterFunc) Count() int { return f() }

// BulletEmitter materializes boss bullets
type BulletEmitter interface {
	Fire(x, y, vx, vy int)
}

// BossEvents are the encounter hooks run at boss transitions, nil hooks are skipped
type BossEvents struct {
	SpawnPhase1   func() // On construction
	ClearShield   func() // Phase 2 entry, first
	SpawnPhase2   func() // Phase 2 entry, second
	Phase2Started func() // Phase 2 entry, last
}

func run(hook func()) {
	if hook != nil {
		hook()
	}
}

// BossConfig holds the tunables of one boss fight
type BossConfig struct {
	MaxHP       int
	Width       int
	Height      int
	Margin      int
	ScreenWidth int

	FireEveryP1 int
	FireEveryP2 int
	MoveEveryP1 int
	MoveEveryP2 int
	SpeedP1     int
	SpeedP2     int

	// Threshold is the HP fraction at or below which phase 2 starts
	Threshold float64
}

// DefaultBossConfig returns the stock boss on the stock playfield
func DefaultBossConfig() BossConfig {
	return BossConfig{
		MaxHP:       parameter.BossMaxHP,
		Width:       parameter.BossWidth,
		Height:      parameter.BossHeight,
		Margin:      parameter.BossEdgeMargin,
		ScreenWidth: parameter.ScreenWidth,
		FireEveryP1: parameter.BossFireEveryP1,
		FireEveryP2: parameter.BossFireEveryP2,
		MoveEveryP1: parameter.BossMoveEveryP1,
		MoveEveryP2: parameter.BossMoveEveryP2,
		SpeedP1:     parameter.BossSpeedP1,
		SpeedP2:     parameter.BossSpeedP2,
		Threshold:   parameter.BossPhase2Threshold,
	}
}

// Boss is the two-phase boss state machine
// Update runs once per unpaused tick; OnHit is routed from the resolver
type Boss struct {
	component.Entity

	cfg    BossConfig
	hp     int
	phase  BossPhase
	phase2 bool // transition already ran

	invulnerable bool
	direction    int // +1 right, -1 left
	fireCounter  int
	moveCounter  int

	minions MinionCounter
	emitter BulletEmitter
	events  BossEvents

	statHP    *atomic.Int64
	statPhase *status.AtomicString
	statShots *atomic.Int64
}

// NewBoss places the boss with its top-left at x, y, enters P1 and runs the phase 1 spawn hook
// emitter may be nil; reg may be nil
func NewBoss(x, y int, cfg BossConfig, minions MinionCounter, emitter BulletEmitter, events BossEvents, reg *status.Registry) *Boss {
	if reg == nil {
		reg = status.NewRegistry()
	}
	b := &Boss{
		Entity: component.Entity{
			Rect: core.Rect{X: x, Y: y, W: cfg.Width, H: cfg.Height},
			Team: core.TeamEnemy,
		},
		cfg:       cfg,
		hp:        cfg.MaxHP,
		phase:     BossPhase1,
		direction: 1,
		minions:   minions,
		emitter:   emitter,
		events:    events,
		statHP:    reg.Ints.Get("boss.hp"),
		statPhase: reg.Strings.Get("boss.phase"),
		statShots: reg.Ints.Get("boss.shots"),
	}
	b.statHP.Store(int64(b.hp))
	b.statPhase.Store(b.phase.String())
	b.statShots.Store(0)

	run(events.SpawnPhase1)
	return b
}

// Update recomputes invulnerability, fires and patrols for one tick
func (b *Boss) Update() {
	b.invulnerable = b.minions != nil && b.minions.Count() > 0

	switch b.phase {
	case BossPhase1:
		b.tickFire(b.cfg.FireEveryP1, parameter.BossSpreadP1)
		b.tickMove(b.cfg.MoveEveryP1, b.cfg.SpeedP1)
	case BossPhase2:
		b.tickFire(b.cfg.FireEveryP2, parameter.BossSpreadP2)
		b.tickMove(b.cfg.MoveEveryP2, b.cfg.SpeedP2)
	}
}

func (b *Boss) tickFire(every, spread int) {
	b.fireCounter++
	if every <= 0 || b.fireCounter < every {
		return
	}
	b.fireCounter = 0
	if b.emitter == nil {
		return
	}
	x := b.CenterX()
	y := b.Y + b.H
	half := spread / 2
	for vx := -half; vx <= half; vx++ {
		b.emitter.Fire(x, y, vx, parameter.BossBulletSpeed)
	}
	b.statShots.Add(int64(spread))
}

func (b *Boss) tickMove(every, speed int) {
	b.moveCounter++
	if every <= 0 || b.moveCounter < every {
		return
	}
	b.moveCounter = 0

	minX := b.cfg.Margin
	maxX := b.cfg.ScreenWidth - b.W - b.cfg.Margin
	nx := b.X + b.direction*parameter.BossStepPx*speed
	switch {
	case nx >= maxX:
		nx = maxX
		b.direction = -1
	case nx <= minX:
		nx = minX
		b.direction = 1
	}
	b.X = nx
}

// OnHit applies damage unless shielded, clamped at zero, and runs the phase 2 transition once
func (b *Boss) OnHit(amount int) {
	if b.invulnerable || amount <= 0 {
		return
	}
	b.hp = max(0, b.hp-amount)
	b.statHP.Store(int64(b.hp))

	if b.phase == BossPhase1 && !b.phase2 && float64(b.hp) <= float64(b.cfg.MaxHP)*b.cfg.Threshold {
		b.enterPhase2()
	}
}

func (b *Boss) enterPhase2() {
	b.phase2 = true
	b.phase = BossPhase2
	b.fireCounter = 0
	b.moveCounter = 0
	b.statPhase.Store(b.phase.String())
	log.Printf("boss entering phase 2 at hp %d/%d", b.hp, b.cfg.MaxHP)

	run(b.events.ClearShield)
	run(b.events.SpawnPhase2)
	run(b.events.Phase2Started)
}

func (b *Boss) HP() int          { return b.hp }
func (b *Boss) MaxHP() int       { return b.cfg.MaxHP }
func (b *Boss) Phase() BossPhase { return b.phase }
func (b *Boss) Direction() int   { return b.direction }
func (b *Boss) Alive() bool      { return b.hp > 0 }

// Invulnerable returns the flag computed by the last Update, false before the first
func (b *Boss) Invulnerable() bool { return b.invulnerable }

// SetSpeedP2 overrides the phase 2 speed multiplier
func (b *Boss) SetSpeedP2(speed int) {
	b.cfg.SpeedP2 = speed
}

// SetFireEvery overrides both fire cadences
func (b *Boss) SetFireEvery(p1, p2 int) {
	b.cfg.FireEveryP1 = p1
	b.cfg.FireEveryP2 = p2
}
