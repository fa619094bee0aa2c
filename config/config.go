// Package config loads game settings from a TOML file with environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/void-siege/parameter"
)

// ErrInvalid is returned by Validate for unusable settings
var ErrInvalid = errors.New("invalid config")

// Config is the root of the TOML document
type Config struct {
	Game    GameConfig        `toml:"game"`
	Levels  []LevelConfig     `toml:"levels"`
	Boss    BossConfig        `toml:"boss"`
	Audio   AudioConfig       `toml:"audio"`
	Keys    map[string]string `toml:"keys"` // key name → action name, overrides defaults
	Storage StorageConfig     `toml:"storage"`
}

// GameConfig holds session-wide settings
type GameConfig struct {
	Width              int  `toml:"width"`
	Height             int  `toml:"height"`
	FPS                int  `toml:"fps"`
	Lives              int  `toml:"lives"`
	Coop               bool `toml:"coop"`
	StartLevel         int  `toml:"start_level"`
	ExtraLifeFrequency int  `toml:"extra_life_frequency"`
	InputDelayMs       int  `toml:"input_delay_ms"`
}

// LevelConfig paces one wave level's formation
type LevelConfig struct {
	FormationWidth     int `toml:"formation_width"`
	FormationHeight    int `toml:"formation_height"`
	BaseSpeed          int `toml:"base_speed"`
	ShootingIntervalMs int `toml:"shooting_interval_ms"`
}

// BossConfig tunes the boss encounter
type BossConfig struct {
	MaxHP       int `toml:"max_hp"`
	FireEveryP1 int `toml:"fire_every_p1"`
	FireEveryP2 int `toml:"fire_every_p2"`
	MoveEveryP1 int `toml:"move_every_p1"`
	MoveEveryP2 int `toml:"move_every_p2"`
	SpeedP2     int `toml:"speed_p2"`
}

// AudioConfig controls the sound service
type AudioConfig struct {
	Enabled       bool               `toml:"enabled"`
	MasterVolume  float64            `toml:"master_volume"` // 0.0 - 1.0
	SampleRate    int                `toml:"sample_rate"`
	EffectVolumes map[string]float64 `toml:"effect_volumes"` // sound name → relative volume
}

// StorageConfig locates save files
type StorageConfig struct {
	Directory string `toml:"directory"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Width:              parameter.ScreenWidth,
			Height:             parameter.ScreenHeight,
			FPS:                parameter.TargetFPS,
			Lives:              parameter.InitialLives,
			StartLevel:         1,
			ExtraLifeFrequency: parameter.ExtraLifeFrequency,
			InputDelayMs:       int(parameter.WaveInputDelay / time.Millisecond),
		},
		Levels: DefaultLevels(),
		Boss: BossConfig{
			MaxHP:       parameter.BossMaxHP,
			FireEveryP1: parameter.BossFireEveryP1,
			FireEveryP2: parameter.BossFireEveryP2,
			MoveEveryP1: parameter.BossMoveEveryP1,
			MoveEveryP2: parameter.BossMoveEveryP2,
			SpeedP2:     parameter.BossSpeedP2,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Keys:    map[string]string{},
		Storage: StorageConfig{Directory: "saves"},
	}
}

// DefaultLevels returns the wave ladder, denser and faster each level
func DefaultLevels() []LevelConfig {
	return []LevelConfig{
		{FormationWidth: 5, FormationHeight: 4, BaseSpeed: 60, ShootingIntervalMs: 2000},
		{FormationWidth: 5, FormationHeight: 5, BaseSpeed: 50, ShootingIntervalMs: 2500},
		{FormationWidth: 6, FormationHeight: 5, BaseSpeed: 40, ShootingIntervalMs: 1500},
		{FormationWidth: 6, FormationHeight: 6, BaseSpeed: 30, ShootingIntervalMs: 1500},
		{FormationWidth: 7, FormationHeight: 6, BaseSpeed: 20, ShootingIntervalMs: 1000},
	}
}

// Load reads path over the defaults; a missing file yields defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// A [[levels]] array replaces the ladder as a whole
	cfg.Levels = nil

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultLevels()
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v: %w", path, undecoded, ErrInvalid)
	}

	return cfg, nil
}

// ApplyEnv overrides audio settings from VOID_SIEGE_* environment variables
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("VOID_SIEGE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("VOID_SIEGE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(1, max(0, float64(val)/100.0))
		}
	}

	if dir := os.Getenv("VOID_SIEGE_SAVE_DIR"); dir != "" {
		c.Storage.Directory = dir
	}
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: playfield %dx%d", ErrInvalid, g.Width, g.Height)
	case g.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, g.FPS)
	case g.Lives <= 0:
		return fmt.Errorf("%w: lives %d", ErrInvalid, g.Lives)
	case g.ExtraLifeFrequency <= 0:
		return fmt.Errorf("%w: extra_life_frequency %d", ErrInvalid, g.ExtraLifeFrequency)
	case g.InputDelayMs < 0:
		return fmt.Errorf("%w: input_delay_ms %d", ErrInvalid, g.InputDelayMs)
	case len(c.Levels) == 0:
		return fmt.Errorf("%w: no levels", ErrInvalid)
	case g.StartLevel < 1 || g.StartLevel > len(c.Levels)+1:
		return fmt.Errorf("%w: start_level %d outside 1..%d", ErrInvalid, g.StartLevel, len(c.Levels)+1)
	}

	for i, l := range c.Levels {
		if l.FormationWidth <= 0 || l.FormationHeight <= 0 || l.BaseSpeed <= 0 || l.ShootingIntervalMs <= 0 {
			return fmt.Errorf("%w: level %d has non-positive settings", ErrInvalid, i+1)
		}
	}

	b := c.Boss
	if b.MaxHP <= 0 || b.FireEveryP1 <= 0 || b.FireEveryP2 <= 0 || b.MoveEveryP1 <= 0 || b.MoveEveryP2 <= 0 || b.SpeedP2 <= 0 {
		return fmt.Errorf("%w: boss settings must be positive", ErrInvalid)
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume %.2f outside 0..1", ErrInvalid, c.Audio.MasterVolume)
	}
	return nil
}

// BossLevel is the level number of the boss encounter
func (c *Config) BossLevel() int {
	return len(c.Levels) + 1
}

// InputDelay returns the encounter countdown
func (c *Config) InputDelay() time.Duration {
	return time.Duration(c.Game.InputDelayMs) * time.Millisecond
}

// ShootingInterval returns the level's formation fire interval
func (l LevelConfig) ShootingInterval() time.Duration {
	return time.Duration(l.ShootingIntervalMs) * time.Millisecond
}
