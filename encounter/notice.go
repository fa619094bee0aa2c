package encounter

import (
	"time"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

// HighScoreNotice shows "new high score" once per session when the score passes the best on record
type HighScoreNotice struct {
	clock    engine.TimeProvider
	top      int
	notified bool
	shownAt  time.Time
}

// NewHighScoreNotice creates a notice against the best recorded score
func NewHighScoreNotice(clock engine.TimeProvider, top int) *HighScoreNotice {
	return &HighScoreNotice{clock: clock, top: top}
}

// Check fires the notice the first time score exceeds the record, returns whether it fired now
func (n *HighScoreNotice) Check(score int) bool {
	if n.notified || score <= n.top {
		return false
	}
	n.notified = true
	n.shownAt = n.clock.Now()
	return true
}

// Visible reports whether the notice is still on screen
func (n *HighScoreNotice) Visible() bool {
	return n.notified && n.clock.Now().Sub(n.shownAt) < parameter.HighScoreNoticeDuration
}

// Notified reports whether the notice already fired this session
func (n *HighScoreNotice) Notified() bool {
	return n.notified
}
