package encounter

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/void-siege/achievement"
	"github.com/lixenwraith/void-siege/config"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/input"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/render"
	"github.com/lixenwraith/void-siege/status"
	"github.com/lixenwraith/void-siege/storage"
)

// Result is what the score screen shows once the session stops
type Result struct {
	Next      NextScreen
	Cleared   bool // Boss beaten with lives left
	Score     int
	ClearTime time.Duration
	NewRecord bool // Clear time placed in the high score table
	Unlocked  []string
}

// SessionOptions are the optional collaborators of a session
type SessionOptions struct {
	Source   engine.TimeProvider // Defaults to the monotonic clock
	Sinks    []EventSink
	Registry *status.Registry
	Rng      *rand.Rand
}

// Session plays the levels in order and persists results when it stops
type Session struct {
	cfg   *config.Config
	store storage.Store
	name  string
	mode  string
	id    string

	clock *engine.PausableClock
	state *engine.GameState
	deps  Deps

	current Encounter
	frame   *render.Frame
	done    bool
	result  Result
}

// NewSession creates the shared state and loads the player's saved achievements and the best score
func NewSession(cfg *config.Config, store storage.Store, name string, opts SessionOptions) *Session {
	if opts.Source == nil {
		opts.Source = engine.NewMonotonicTimeProvider()
	}
	clock := engine.NewPausableClock(opts.Source)
	state := engine.NewGameState(clock, cfg.Game.Coop, cfg.Game.Lives)
	state.Level = min(max(cfg.Game.StartLevel, 1), cfg.BossLevel())

	s := &Session{
		cfg:   cfg,
		store: store,
		name:  name,
		mode:  storage.ModeFor(cfg.Game.Coop),
		id:    storage.NewSessionID(),
		clock: clock,
		state: state,
	}

	achievements := achievement.NewManager(clock.Real(), nil)
	s.deps = Deps{
		State:        state,
		Clock:        clock,
		Queue:        event.NewEventQueue(),
		Achievements: achievements,
		Notice:       NewHighScoreNotice(clock.Real(), s.bestScore()),
		Registry:     opts.Registry,
		Rng:          opts.Rng,
		Sinks:        opts.Sinks,
		Width:        cfg.Game.Width,
		Height:       cfg.Game.Height,
		FinalWave:    cfg.BossLevel() - 1,
	}.withDefaults()

	if store != nil {
		saved, err := store.Achievements(name, s.mode)
		switch {
		case err == nil:
			achievements.Preload(saved)
		case !errors.Is(err, storage.ErrNoRecords):
			log.Printf("loading achievements for %s: %v", name, err)
		}
	}

	log.Printf("session %s started: mode %s, level %d, boss level %d", s.id, s.mode, state.Level, cfg.BossLevel())
	return s
}

// bestScore returns the highest score recorded in this mode's table
func (s *Session) bestScore() int {
	if s.store == nil {
		return 0
	}
	table, err := s.store.HighScores(s.mode)
	if err != nil {
		if !errors.Is(err, storage.ErrNoRecords) {
			log.Printf("loading high scores: %v", err)
		}
		return 0
	}
	best := 0
	for _, rec := range table {
		best = max(best, rec.Score)
	}
	return best
}

// Step runs one tick; false once the session has stopped and Result is final
func (s *Session) Step(in input.Snapshot) bool {
	if s.done {
		return false
	}
	if s.current == nil {
		s.current = s.startLevel()
		s.frame = s.current.Frame()
	}
	if s.current.Tick(in) {
		return true
	}

	switch next := s.current.Next(); next {
	case NextContinue:
		if s.state.TeamAlive() && s.state.Level < s.cfg.BossLevel() {
			s.state.NextLevel()
			s.current = nil
			return true
		}
		if s.state.TeamAlive() {
			s.state.NextLevel()
		}
		s.finish(NextScore)
	default:
		s.finish(next)
	}
	return false
}

// Abort ends a running session as a menu exit, saving what was unlocked so far
func (s *Session) Abort() {
	if s.done {
		return
	}
	s.finish(NextMenu)
}

// startLevel builds the encounter for the current level
func (s *Session) startLevel() Encounter {
	level := s.state.Level
	deps := s.deps

	if level >= s.cfg.BossLevel() {
		deps.InputDelay = s.inputDelay(parameter.BossInputDelay)
		return NewBossFight(deps, BossConfigFrom(s.cfg.Boss, s.cfg.Game.Width), s.cfg.BossLevel())
	}

	deps.InputDelay = s.inputDelay(parameter.WaveInputDelay)
	freq := s.cfg.Game.ExtraLifeFrequency
	bonusLife := freq > 0 && level%freq == 0 && s.state.LivesRemaining() < parameter.MaxLives
	return NewWave(deps, s.cfg.Levels[level-1], bonusLife)
}

func (s *Session) inputDelay(fallback time.Duration) time.Duration {
	if d := s.cfg.InputDelay(); d > 0 {
		return d
	}
	return fallback
}

// finish records the result and saves what the run unlocked
func (s *Session) finish(next NextScreen) {
	s.done = true
	gs := s.state
	s.result = Result{
		Next:      next,
		Cleared:   gs.TeamAlive() && gs.Level > s.cfg.BossLevel(),
		Score:     gs.TotalScore(),
		ClearTime: gs.BossClearTime(),
		Unlocked:  s.deps.Achievements.Unlocked(),
	}
	log.Printf("session %s finished: next %s, level %d, score %d", s.id, next, gs.Level, s.result.Score)

	if s.store == nil {
		return
	}
	if err := s.store.SaveAchievements(s.name, s.mode, s.result.Unlocked); err != nil {
		log.Printf("saving achievements for %s: %v", s.name, err)
	}
	if !s.result.Cleared || s.result.ClearTime <= 0 {
		return
	}
	rec := storage.NewHighScore(s.name, s.result.ClearTime, s.result.Score, s.id, s.clock.RealTime())
	placed, err := s.store.SubmitHighScore(s.mode, rec)
	if err != nil {
		log.Printf("submitting high score for %s: %v", s.name, err)
		return
	}
	s.result.NewRecord = placed
}

// Frame returns the view of the running or last encounter, nil before the first tick
func (s *Session) Frame() *render.Frame {
	return s.frame
}

// Current returns the running encounter, nil between levels
func (s *Session) Current() Encounter {
	return s.current
}

func (s *Session) State() *engine.GameState     { return s.state }
func (s *Session) Clock() *engine.PausableClock { return s.clock }
func (s *Session) ID() string                   { return s.id }
func (s *Session) Done() bool                   { return s.done }
func (s *Session) Result() Result               { return s.result }
