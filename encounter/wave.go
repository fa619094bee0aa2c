package encounter

import (
	"log"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/config"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/input"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/system"
)

// waveLayout spans the formation across the playfield with a descending turn
func waveLayout(f *system.Field) system.FormationLayout {
	return system.FormationLayout{
		OriginX: parameter.FormationInitX,
		OriginY: parameter.FormationInitY,
		MinX:    parameter.FormationSideMargin,
		MaxX:    f.Width - parameter.FormationSideMargin,
		FloorY:  f.Height - parameter.FormationFloorMargin,
		Descent: parameter.FormationDescent,
		Kind:    system.WaveKinds,
	}
}

// Wave is a regular level: one formation, the bonus ship and the life bonus on exit
type Wave struct {
	*base

	bonusLife bool

	specialSpawn     *engine.Cooldown
	specialExplosion *engine.Cooldown
}

// NewWave builds the level from its settings; bonusLife grants one life up front
func NewWave(deps Deps, level config.LevelConfig, bonusLife bool) *Wave {
	deps = deps.withDefaults()
	w := &Wave{
		base:      newBase(deps),
		bonusLife: bonusLife,
	}
	w.spawnShips()

	settings := system.FormationSettings{
		Width:            level.FormationWidth,
		Height:           level.FormationHeight,
		BaseSpeed:        level.BaseSpeed,
		ShootingInterval: level.ShootingInterval(),
	}
	w.field.Formation = system.NewFormation(settings, waveLayout(w.field), w.clock, deps.Rng, w.field)

	w.specialSpawn = engine.NewVariableCooldown(w.clock, parameter.SpecialShipInterval, parameter.SpecialShipVariance, deps.Rng)
	w.specialSpawn.Reset()
	w.specialExplosion = engine.NewCooldown(w.clock, parameter.SpecialShipExplosion)

	if bonusLife {
		w.state.GrantLife(0)
	}
	log.Printf("wave level %d: %dx%d formation, bonus life %t", w.state.Level, settings.Width, settings.Height, bonusLife)
	return w
}

// Tick runs one frame of the wave
func (w *Wave) Tick(in input.Snapshot) bool {
	if !w.running {
		return false
	}
	w.ticks++
	defer w.drain()

	if !w.handleRevive(in) {
		w.fillFrame()
		return w.running
	}

	w.handleCountdown()
	system.CheckBasicAchievements(w.state, w.deps.Achievements)

	if !w.handlePause(in) {
		return false
	}

	if !w.paused {
		if !w.step(in) {
			w.fillFrame()
			return w.running
		}
	}

	w.deps.Achievements.Update()
	w.fillFrame()
	return w.running
}

// step is the unpaused part of the tick; false when the revive prompt opened
func (w *Wave) step(in input.Snapshot) bool {
	if w.inputDelay.Finished() && !w.levelFinished {
		w.handlePlayers(in)
		w.updateSpecial()
		w.updateShips()
		w.field.Formation.Update()
		w.field.Formation.Shoot()
	}

	res, playing := w.resolve()
	if res.SpecialKilled {
		w.specialExplosion.Reset()
	}
	if !playing {
		return false
	}

	w.upkeep()
	w.checkHighScore()

	formation := w.field.Formation
	if (formation.Empty() || !w.state.TeamAlive()) && !w.levelFinished {
		w.finishLevel()
		// Accuracy and survival are judged on the final wave only
		if formation.Empty() && w.state.Level == w.deps.FinalWave {
			system.CheckEncounterClearAchievements(w.deps.Achievements, w.resolver.TookDamage,
				w.state.TotalShipsDestroyed(), w.state.TotalBulletsShot())
			system.CheckClearAchievement(w.deps.Achievements, w.state.Level, w.deps.FinalWave, true)
		}
		system.CheckBasicAchievements(w.state, w.deps.Achievements)
		log.Printf("wave level %d finished, formation left: %d", w.state.Level, formation.Count())
	}

	if w.readyToExit() {
		w.exit()
	}
	return true
}

// updateSpecial moves, spawns and retires the bonus ship
func (w *Wave) updateSpecial() {
	f := w.field
	if s := f.Special; s != nil {
		if !s.Destroyed {
			s.X += parameter.SpecialShipSpeed
		} else if w.specialExplosion.Finished() {
			f.Special = nil
		}
	}
	if f.Special == nil && w.specialSpawn.Finished() {
		f.Special = component.NewEnemyShip(component.EnemySpecial, -parameter.SpecialShipWidth, parameter.SpecialShipY)
		w.specialSpawn.Reset()
		log.Printf("a special ship appears")
	}
	if s := f.Special; s != nil && !s.Destroyed && s.X > f.Width {
		f.Special = nil
		log.Printf("the special ship has escaped")
	}
}

// exit stops the wave and converts remaining lives to score for player 1
func (w *Wave) exit() {
	w.running = false
	w.next = NextContinue
	w.state.AddScore(0, parameter.LifeScore*w.state.LivesRemaining())
}

// BonusLife reports whether this level granted a life on entry
func (w *Wave) BonusLife() bool {
	return w.bonusLife
}

func (w *Wave) fillFrame() {
	w.base.fillFrame()
	w.frame.BonusLife = w.bonusLife
}
