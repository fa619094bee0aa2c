package encounter

import (
	"log"
	"time"

	"github.com/lixenwraith/void-siege/config"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/input"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/system"
)

// Boss fight messages
const (
	MsgMinionsFirst = "Let's defeat the minions first!"
	MsgPhase2       = "Phase 2 Started!"
)

var (
	minionsP1 = system.FormationSettings{
		Width:            parameter.MinionGroupP1Width,
		Height:           parameter.MinionGroupP1Height,
		BaseSpeed:        parameter.MinionSpeedP1,
		ShootingInterval: parameter.MinionShootingIntervalP1,
	}
	minionsP2 = system.FormationSettings{
		Width:            parameter.MinionGroupP2Width,
		Height:           parameter.MinionGroupP2Height,
		BaseSpeed:        parameter.MinionSpeedP2,
		ShootingInterval: parameter.MinionShootingIntervalP2,
	}
)

// BossConfigFrom maps the config section onto the boss tunables for a playfield width
func BossConfigFrom(c config.BossConfig, screenWidth int) system.BossConfig {
	cfg := system.DefaultBossConfig()
	cfg.ScreenWidth = screenWidth
	if c.MaxHP > 0 {
		cfg.MaxHP = c.MaxHP
	}
	if c.FireEveryP1 > 0 {
		cfg.FireEveryP1 = c.FireEveryP1
	}
	if c.FireEveryP2 > 0 {
		cfg.FireEveryP2 = c.FireEveryP2
	}
	if c.MoveEveryP1 > 0 {
		cfg.MoveEveryP1 = c.MoveEveryP1
	}
	if c.MoveEveryP2 > 0 {
		cfg.MoveEveryP2 = c.MoveEveryP2
	}
	if c.SpeedP2 > 0 {
		cfg.SpeedP2 = c.SpeedP2
	}
	return cfg
}

// BossFight is the final level: a two-phase boss shielded by minion groups, on the clear timer
type BossFight struct {
	*base

	boss  *system.Boss
	timer *engine.BossTimer

	phase2Msg            *engine.Cooldown
	invulnerableMsg      *engine.Cooldown
	invulnerableMsgCount int
}

// NewBossFight places the boss, spawns its first minion group and arms the clear timer for bossLevel
func NewBossFight(deps Deps, cfg system.BossConfig, bossLevel int) *BossFight {
	deps = deps.withDefaults()
	bf := &BossFight{base: newBase(deps)}
	bf.spawnShips()

	bf.timer = engine.NewBossTimer(bf.clock, bossLevel)
	bf.phase2Msg = engine.NewCooldown(bf.clock, parameter.Phase2MsgDuration)
	bf.invulnerableMsg = engine.NewCooldown(bf.clock, parameter.InvulnerableMsgDuration)
	bf.onEvent = bf.handleEvent
	bf.frame.BossLevel = true

	f := bf.field
	cfg.ScreenWidth = f.Width
	hooks := system.BossEvents{
		SpawnPhase1: func() {
			log.Printf("boss spawning phase 1 minions (%dx%d)", minionsP1.Width, minionsP1.Height)
			f.Formation = bf.minionGroup(minionsP1)
		},
		ClearShield: func() {
			log.Printf("boss clearing phase 1 minions")
			f.Formation.Clear()
		},
		SpawnPhase2: func() {
			log.Printf("boss spawning phase 2 minions (%dx%d)", minionsP2.Width, minionsP2.Height)
			f.Formation = bf.minionGroup(minionsP2)
		},
		Phase2Started: func() {
			bf.phase2Msg.Reset()
			bf.events.Sound(core.SoundPhase2)
			bf.events.Emit(event.EventBossPhase2, nil)
		},
	}
	minions := system.MinionCounterFunc(func() int { return f.Formation.Count() })

	bf.boss = system.NewBoss((f.Width-cfg.Width)/2, parameter.BossY, cfg, minions, f, hooks, deps.Registry)
	f.Boss = bf.boss
	log.Printf("boss level %d: hp %d", deps.State.Level, cfg.MaxHP)
	return bf
}

// minionGroup builds a formation of minions just below the boss
func (bf *BossFight) minionGroup(settings system.FormationSettings) *system.Formation {
	f := bf.field
	layout := system.FormationLayout{
		OriginX: parameter.FormationInitX,
		OriginY: parameter.BossY + parameter.BossHeight + parameter.MinionPadding,
		MinX:    parameter.FormationSideMargin,
		MaxX:    f.Width - parameter.FormationSideMargin,
		FloorY:  f.Height - parameter.FormationFloorMargin,
		Descent: parameter.FormationDescent,
		Kind:    system.MinionKinds,
	}
	return system.NewFormation(settings, layout, bf.clock, bf.deps.Rng, f)
}

func (bf *BossFight) handleEvent(ev event.GameEvent) {
	if ev.Type != event.EventBossInvulnerableHit {
		return
	}
	if bf.invulnerableMsgCount < parameter.MaxInvulnerableMsgShows {
		bf.invulnerableMsg.Reset()
		bf.invulnerableMsgCount++
	}
}

// Tick runs one frame of the boss fight
func (bf *BossFight) Tick(in input.Snapshot) bool {
	if !bf.running {
		return false
	}
	bf.ticks++
	defer bf.drain()

	if !bf.handleRevive(in) {
		bf.fillFrame()
		return bf.running
	}

	bf.handleCountdown()
	if !bf.handlePause(in) {
		return false
	}

	if !bf.paused {
		bf.step(in)
	}

	bf.fillFrame()
	return bf.running
}

func (bf *BossFight) step(in input.Snapshot) {
	if bf.inputDelay.Finished() && !bf.levelFinished {
		if !bf.timer.Running() && bf.timer.Elapsed() == 0 {
			bf.timer.StartAt(bf.state.Level)
		}
		bf.handlePlayers(in)
		bf.updateShips()
		if bf.field.Boss != nil && bf.boss.Alive() {
			bf.boss.Update()
		}
		if m := bf.field.Formation; m != nil {
			m.Update()
			m.Shoot()
		}
	}

	if _, playing := bf.resolve(); !playing {
		return
	}
	bf.upkeep()
	bf.checkHighScore()

	system.CheckBasicAchievements(bf.state, bf.deps.Achievements)

	if !bf.state.TeamAlive() && !bf.levelFinished {
		bf.defeat()
	}
	if bf.field.Boss != nil && bf.boss.HP() <= 0 && !bf.levelFinished {
		bf.victory()
	}

	if bf.readyToExit() {
		bf.running = false
		bf.next = NextContinue
	}
	bf.deps.Achievements.Update()
}

// defeat stops the clock and clears the field when the team is gone
func (bf *BossFight) defeat() {
	log.Printf("player team is defeated on the boss level")
	bf.timer.Stop()
	bf.events.Sound(core.SoundLose)
	bf.finishLevel()
	bf.field.Boss = nil
	bf.field.Formation.Clear()
}

// victory records the clear time and runs the clear achievements
func (bf *BossFight) victory() {
	bf.timer.Stop()
	bf.state.SetBossClearTime(bf.timer.Elapsed())
	log.Printf("boss defeated in %s", bf.timer.Elapsed())

	bf.finishLevel()
	bf.field.Formation.Clear()

	hits := system.BossHits(bf.state, bf.boss.MaxHP())
	system.CheckEncounterClearAchievements(bf.deps.Achievements, bf.resolver.TookDamage, hits, bf.state.TotalBulletsShot())
}

// Boss returns the boss state machine
func (bf *BossFight) Boss() *system.Boss {
	return bf.boss
}

// Elapsed returns the clear timer reading
func (bf *BossFight) Elapsed() time.Duration {
	return bf.timer.Elapsed()
}

// Messages returns the banner lines currently shown; the phase 2 banner hides the minions hint
func (bf *BossFight) Messages() []string {
	switch {
	case bf.phase2Msg.Remaining() > 0:
		return []string{MsgPhase2}
	case bf.invulnerableMsg.Remaining() > 0:
		return []string{MsgMinionsFirst}
	}
	return nil
}

// InvulnerableMsgCount returns how often the minions hint was shown
func (bf *BossFight) InvulnerableMsgCount() int {
	return bf.invulnerableMsgCount
}

func (bf *BossFight) fillFrame() {
	bf.base.fillFrame()
	bf.frame.Messages = bf.Messages()
	bf.frame.BossElapsed = bf.timer.Elapsed()
}
