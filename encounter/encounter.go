// Package encounter hosts the per-tick flow of wave levels and the boss fight
package encounter

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/void-siege/achievement"
	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/input"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/render"
	"github.com/lixenwraith/void-siege/status"
	"github.com/lixenwraith/void-siege/system"
)

// NextScreen is where the session goes after an encounter stops
type NextScreen int

const (
	// NextContinue means the encounter ended on its own, the session decides by lives
	NextContinue NextScreen = iota
	// NextMenu means the player left from the pause menu
	NextMenu
	// NextScore means the revive was declined or failed
	NextScore
)

func (n NextScreen) String() string {
	switch n {
	case NextMenu:
		return "menu"
	case NextScore:
		return "score"
	default:
		return "continue"
	}
}

// Encounter is one level driven by the session
type Encounter interface {
	// Tick runs one frame and reports whether the encounter is still running
	Tick(in input.Snapshot) bool
	Frame() *render.Frame
	Field() *system.Field
	Next() NextScreen
}

// EventSink consumes drained events, audio and renderer implement it
type EventSink interface {
	HandleEvents(events []event.GameEvent)
}

// Deps are the session-owned collaborators shared by every encounter
type Deps struct {
	State        *engine.GameState
	Clock        *engine.PausableClock
	Queue        *event.EventQueue
	Achievements *achievement.Manager
	Notice       *HighScoreNotice
	Registry     *status.Registry
	Rng          *rand.Rand
	Sinks        []EventSink

	Width, Height int
	InputDelay    time.Duration
	// FinalWave is the last wave level, the one that awards the clear achievements
	FinalWave int
}

// base is the flow shared by wave and boss encounters
type base struct {
	deps   Deps
	state  *engine.GameState
	clock  *engine.PausableClock
	events *event.Emitter

	field    *system.Field
	resolver *system.Resolver
	pickups  *system.Pickups
	revive   *system.ReviveFlow
	frame    *render.Frame

	inputDelay     *engine.Cooldown
	pauseCooldown  *engine.Cooldown // Real time
	menuCooldown   *engine.Cooldown // Real time
	finishCooldown *engine.Cooldown

	countdownBeeped bool
	paused          bool
	levelFinished   bool
	running         bool
	next            NextScreen
	ticks           int64

	onEvent func(ev event.GameEvent)
}

// withDefaults fills optional collaborators; State and Clock are required
func (d Deps) withDefaults() Deps {
	if d.Registry == nil {
		d.Registry = status.NewRegistry()
	}
	if d.Queue == nil {
		d.Queue = event.NewEventQueue()
	}
	if d.Achievements == nil {
		d.Achievements = achievement.NewManager(d.Clock.Real(), nil)
	}
	if d.Rng == nil {
		d.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.FinalWave <= 0 {
		d.FinalWave = parameter.DefaultWaveLevels
	}
	return d
}

func newBase(deps Deps) *base {
	b := &base{
		deps:    deps,
		state:   deps.State,
		clock:   deps.Clock,
		running: true,
	}
	b.events = &event.Emitter{Queue: deps.Queue, Frame: func() int64 { return b.ticks }}

	b.field = system.NewField(deps.State, b.events, deps.Registry)
	if deps.Width > 0 && deps.Height > 0 {
		b.field.Width, b.field.Height = deps.Width, deps.Height
	}
	b.resolver = system.NewResolver(b.field, system.NewLootTable(deps.State, deps.Rng, deps.Registry), deps.Registry)
	b.pickups = system.NewPickups(b.field, deps.Registry)
	b.revive = system.NewReviveFlow(deps.State, b, b.events)
	b.frame = render.NewFrame(b.field)
	b.frame.Inventories = b.pickups.Inventories

	b.inputDelay = engine.NewCooldown(deps.Clock, deps.InputDelay)
	b.inputDelay.Reset()
	b.pauseCooldown = engine.NewCooldown(deps.Clock.Real(), parameter.PauseCooldown)
	b.menuCooldown = engine.NewCooldown(deps.Clock.Real(), parameter.ReturnMenuCooldown)
	b.finishCooldown = engine.NewCooldown(deps.Clock, parameter.ScreenChangeInterval)
	return b
}

// spawnShips places one ship per active player near the bottom edge
func (b *base) spawnShips() {
	f := b.field
	y := f.Height - parameter.ShipSpawnOffsetY
	if b.state.Players < 2 {
		f.Ships[0] = component.NewShip(b.clock, 0, f.Width/2, y)
		return
	}
	f.Ships[0] = component.NewShip(b.clock, 0, f.Width/2-parameter.ShipSpawnOffsetX, y)
	f.Ships[1] = component.NewShip(b.clock, 1, f.Width/2+parameter.ShipSpawnOffsetX, y)
}

func (b *base) Frame() *render.Frame       { return b.frame }
func (b *base) Field() *system.Field       { return b.field }
func (b *base) Next() NextScreen           { return b.next }
func (b *base) Paused() bool               { return b.paused }
func (b *base) LevelFinished() bool        { return b.levelFinished }
func (b *base) Revive() *system.ReviveFlow { return b.revive }

// ===== REVIVE HOST =====

func (b *base) OnReviveSuccess() {
	b.levelFinished = false
	b.finishCooldown.Reset()
}

func (b *base) OnReviveRejected() {
	b.next = NextScore
	b.running = false
}

func (b *base) OnReviveFailureAcknowledged() {
	b.next = NextScore
	b.running = false
}

// handleRevive feeds menu input to the prompt; returns false while the rest of the tick must not run
func (b *base) handleRevive(in input.Snapshot) bool {
	switch b.revive.Phase() {
	case system.RevivePrompt, system.ReviveResult:
		b.revive.Update(system.ReviveInput{Up: in.Up, Down: in.Down, Confirm: in.Confirm})
		return false
	case system.ReviveExiting:
		b.running = false
		return false
	}
	return true
}

// ===== COUNTDOWN / PAUSE =====

func (b *base) handleCountdown() {
	if b.countdownBeeped || b.inputDelay.Finished() {
		return
	}
	if b.inputDelay.Elapsed() > parameter.CountdownBeepAt {
		b.events.Sound(core.SoundCountdown)
		b.countdownBeeped = true
	}
}

// handlePause toggles pause and handles back-to-menu; returns false once the encounter was left
func (b *base) handlePause(in input.Snapshot) bool {
	if b.inputDelay.Finished() && in.Pause && b.pauseCooldown.Finished() {
		b.paused = !b.paused
		b.pauseCooldown.Reset()
		if b.paused {
			b.clock.Pause()
			b.menuCooldown.Reset()
		} else {
			b.clock.Resume()
		}
	}

	if b.paused && in.Back && b.menuCooldown.Finished() {
		b.clock.Resume()
		b.next = NextMenu
		b.running = false
		log.Printf("level %d left to menu", b.state.Level)
		return false
	}
	return true
}

// ===== PLAYER =====

// handlePlayers applies move, fire and use-item intents of every active ship
func (b *base) handlePlayers(in input.Snapshot) {
	for p, ship := range b.field.Ships {
		if ship == nil || ship.Destroyed || !b.state.PlayerAlive(p) {
			continue
		}
		intents := in.Player(p)

		switch {
		case intents.Right && !intents.Left:
			ship.MoveBy(parameter.ShipSpeed, b.field.Width)
		case intents.Left && !intents.Right:
			ship.MoveBy(-parameter.ShipSpeed, b.field.Width)
		}

		if intents.Fire && ship.TryShoot() {
			b.fire(p, ship)
		}
		if intents.UseItem {
			b.pickups.Use(p)
		}
	}
}

// fire spawns the player's volley; one trigger counts as one shot
func (b *base) fire(p int, ship *component.Ship) {
	x, y := ship.Muzzle()
	speed := parameter.PlayerBulletSpeed - b.state.EffectMagnitude(p, engine.EffectBulletSpeedUp)
	owner := p + 1

	b.field.FirePlayer(x, y, 0, speed, owner)
	if b.state.HasEffect(p, engine.EffectTripleShot) {
		b.field.FirePlayer(x-parameter.TripleShotOffsetX, y, -parameter.TripleShotSpreadX, speed, owner)
		b.field.FirePlayer(x+parameter.TripleShotOffsetX, y, parameter.TripleShotSpreadX, speed, owner)
	}
	b.state.IncBulletsShot(p)
	b.events.Sound(core.SoundShoot)
}

func (b *base) updateShips() {
	for _, s := range b.field.Ships {
		if s != nil {
			s.Update()
		}
	}
}

// ===== COMBAT / UPKEEP =====

// resolve runs collisions; returns false when the team was eliminated and the prompt opened
func (b *base) resolve() (system.ResolveResult, bool) {
	res := b.resolver.Resolve(b.levelFinished)
	if res.TeamEliminated {
		b.revive.Enter()
	}
	return res, b.revive.Phase() == system.RevivePlaying
}

// upkeep moves and cleans transient entities, collects pickups and expires effects
func (b *base) upkeep() {
	b.field.Advance()
	b.field.CleanBullets()
	b.field.CleanItems()
	b.pickups.Update()
	b.pickups.Expire()
}

func (b *base) checkHighScore() {
	if b.deps.Notice != nil {
		b.deps.Notice.Check(b.state.TotalScore())
	}
}

// finishLevel recycles transient entities and starts the exit delay
func (b *base) finishLevel() {
	b.field.Clear()
	b.levelFinished = true
	b.finishCooldown.Reset()
	b.events.Emit(event.EventLevelFinished, nil)
}

// readyToExit reports whether the exit delay passed and every toast was shown
func (b *base) readyToExit() bool {
	return b.levelFinished && b.finishCooldown.Finished() && !b.deps.Achievements.HasPendingToasts()
}

// drain empties the queue, lets the encounter react, then hands events to the sinks
func (b *base) drain() {
	events := b.deps.Queue.Consume()
	if len(events) == 0 {
		return
	}
	if b.onEvent != nil {
		for _, ev := range events {
			b.onEvent(ev)
		}
	}
	for _, sink := range b.deps.Sinks {
		sink.HandleEvents(events)
	}
}

// fillFrame refreshes the overlay fields shared by both encounters
func (b *base) fillFrame() {
	f := b.frame
	f.Reset()
	f.Paused = b.paused
	if !b.inputDelay.Finished() {
		f.Countdown = int(math.Ceil(b.inputDelay.Remaining().Seconds()))
	}
	f.Revive = render.ReviveView{
		Phase:     b.revive.Phase(),
		Selection: b.revive.Selection(),
		Message:   b.revive.Failure().Message(),
	}
	f.Toasts = b.deps.Achievements.ActiveToasts()
	if b.deps.Notice != nil {
		f.HighScoreNotice = b.deps.Notice.Visible()
	}
}
