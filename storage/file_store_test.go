package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func record(name string, clear time.Duration, offset int) HighScore {
	return NewHighScore(name, clear, 1000, "session-"+name, testEpoch.Add(time.Duration(offset)*time.Minute))
}

func names(table []HighScore) []string {
	out := make([]string, len(table))
	for i, h := range table {
		out[i] = h.Name
	}
	return out
}

// TestHighScoresEmpty verifies a fresh store reports ErrNoRecords
func TestHighScoresEmpty(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.HighScores(ModeSolo)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = s.Achievements("ACE", ModeSolo)
	assert.ErrorIs(t, err, ErrNoRecords)
}

// TestSubmitHighScoreRanksAscending verifies ordering by clear time and per-mode separation
func TestSubmitHighScoreRanksAscending(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for i, r := range []HighScore{
		record("BOB", 90*time.Second, 0),
		record("ANN", 60*time.Second, 1),
		record("CAT", 75*time.Second, 2),
	} {
		placed, err := s.SubmitHighScore(ModeSolo, r)
		require.NoError(t, err, i)
		assert.True(t, placed)
	}
	_, err = s.SubmitHighScore(ModeCoop, record("DUO", 30*time.Second, 3))
	require.NoError(t, err)

	solo, err := s.HighScores(ModeSolo)
	require.NoError(t, err)
	assert.Equal(t, []string{"ANN", "CAT", "BOB"}, names(solo))
	assert.Equal(t, 60*time.Second, solo[0].ClearTime())
	assert.Equal(t, "session-ANN", solo[0].Session)

	coop, err := s.HighScores(ModeCoop)
	require.NoError(t, err)
	assert.Equal(t, []string{"DUO"}, names(coop))
}

// TestSubmitHighScoreSameNameOnlyFaster verifies a slower time never replaces a name's record
func TestSubmitHighScoreSameNameOnlyFaster(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.SubmitHighScore(ModeSolo, record("ANN", 60*time.Second, 0))
	require.NoError(t, err)

	placed, err := s.SubmitHighScore(ModeSolo, record("ANN", 70*time.Second, 1))
	require.NoError(t, err)
	assert.False(t, placed)

	placed, err = s.SubmitHighScore(ModeSolo, record("ANN", 50*time.Second, 2))
	require.NoError(t, err)
	assert.True(t, placed)

	table, err := s.HighScores(ModeSolo)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, 50*time.Second, table[0].ClearTime())
}

// TestSubmitHighScoreKeepsTopSeven verifies truncation and rejection of slow records
func TestSubmitHighScoreKeepsTopSeven(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for i := range 7 {
		_, err := s.SubmitHighScore(ModeSolo, record(fmt.Sprintf("P%02d", i), time.Duration(i+1)*time.Second, i))
		require.NoError(t, err)
	}

	placed, err := s.SubmitHighScore(ModeSolo, record("SLOW", time.Minute, 10))
	require.NoError(t, err)
	assert.False(t, placed)

	placed, err = s.SubmitHighScore(ModeSolo, record("FAST", 500*time.Millisecond, 11))
	require.NoError(t, err)
	assert.True(t, placed)

	table, err := s.HighScores(ModeSolo)
	require.NoError(t, err)
	require.Len(t, table, 7)
	assert.Equal(t, "FAST", table[0].Name)
	assert.NotContains(t, names(table), "P06")
}

// TestSubmitHighScoreRejectsBadNames verifies the 3-5 character rule
func TestSubmitHighScoreRejectsBadNames(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.SubmitHighScore(ModeSolo, record("AB", time.Second, 0))
	assert.ErrorIs(t, err, ErrInvalidName)
	_, err = s.SubmitHighScore(ModeSolo, record("TOOLONG", time.Second, 0))
	assert.ErrorIs(t, err, ErrInvalidName)
}

// TestAchievementsMergePerNameAndMode verifies unlocked sets merge without duplicates
func TestAchievementsMergePerNameAndMode(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.SaveAchievements("ACE", ModeSolo, []string{"First Blood", "Survivor"}))
	require.NoError(t, s.SaveAchievements("ACE", ModeSolo, []string{"Survivor", "Clear"}))
	require.NoError(t, s.SaveAchievements("ACE", ModeCoop, []string{"50 Bullets"}))

	// Reopen to read back from disk
	s2, err := NewFileStore(dir)
	require.NoError(t, err)

	got, err := s2.Achievements("ACE", ModeSolo)
	require.NoError(t, err)
	assert.Equal(t, []string{"First Blood", "Survivor", "Clear"}, got)

	got, err = s2.Achievements("ACE", ModeCoop)
	require.NoError(t, err)
	assert.Equal(t, []string{"50 Bullets"}, got)
}

// TestCorruptFileSurfacesError verifies decode failures are wrapped, not swallowed
func TestCorruptFileSurfacesError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, highScoreFile), []byte("[[modes.1P"), 0o644))

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, err = s.HighScores(ModeSolo)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRecords)
	assert.Contains(t, err.Error(), highScoreFile)
}

// TestRankTieKeepsEarlierRecord verifies equal times rank by record time
func TestRankTieKeepsEarlierRecord(t *testing.T) {
	table, placed := Rank(nil, record("OLD", time.Second, 0), 2)
	require.True(t, placed)
	table, placed = Rank(table, record("NEW", time.Second, 5), 2)
	require.True(t, placed)
	assert.Equal(t, []string{"OLD", "NEW"}, names(table))

	_, placed = Rank(table, record("TIE", time.Second, 9), 2)
	assert.False(t, placed)
}

// TestModeFor verifies table keys
func TestModeFor(t *testing.T) {
	assert.Equal(t, "1P", ModeFor(false))
	assert.Equal(t, "2P", ModeFor(true))
	assert.NotEqual(t, NewSessionID(), NewSessionID())
}
