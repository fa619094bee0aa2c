// Package storage persists time-attack high scores and unlocked achievements as TOML files
package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoRecords is returned when a table has no entries yet
	ErrNoRecords = errors.New("no records")

	// ErrInvalidName is returned for player names outside the allowed length
	ErrInvalidName = errors.New("invalid player name")
)

// Mode keys for solo and co-op tables
const (
	ModeSolo = "1P"
	ModeCoop = "2P"
)

// ModeFor returns the table key of a session
func ModeFor(coop bool) string {
	if coop {
		return ModeCoop
	}
	return ModeSolo
}

// HighScore is one time-attack record; lower clear time ranks higher
type HighScore struct {
	Name        string    `toml:"name"`
	ClearTimeMs int64     `toml:"clear_time_ms"`
	Score       int       `toml:"score"`
	Session     string    `toml:"session"`
	RecordedAt  time.Time `toml:"recorded_at"`
}

// ClearTime returns the record's boss clear duration
func (h HighScore) ClearTime() time.Duration {
	return time.Duration(h.ClearTimeMs) * time.Millisecond
}

// NewHighScore builds a record stamped with the session id and time
func NewHighScore(name string, clearTime time.Duration, score int, session string, at time.Time) HighScore {
	return HighScore{
		Name:        name,
		ClearTimeMs: clearTime.Milliseconds(),
		Score:       score,
		Session:     session,
		RecordedAt:  at.UTC(),
	}
}

// NewSessionID returns a fresh id for one game session
func NewSessionID() string {
	return uuid.NewString()
}

// Store is what the session needs from persistence, called only at encounter end
type Store interface {
	// HighScores returns the ranked table for mode, ErrNoRecords when empty
	HighScores(mode string) ([]HighScore, error)

	// SubmitHighScore inserts rec and reports whether it placed in the table
	SubmitHighScore(mode string, rec HighScore) (bool, error)

	// Achievements returns names unlocked by the player in mode, ErrNoRecords when none
	Achievements(name, mode string) ([]string, error)

	// SaveAchievements merges unlocked names into the player's set
	SaveAchievements(name, mode string, unlocked []string) error
}
