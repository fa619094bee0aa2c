package storage

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/void-siege/parameter"
)

// ValidateName checks the player name length
func ValidateName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < parameter.MinNameLength || n > parameter.MaxNameLength {
		return fmt.Errorf("%w: %q must be %d-%d characters", ErrInvalidName, name, parameter.MinNameLength, parameter.MaxNameLength)
	}
	return nil
}

// compareScores orders by clear time, earlier record first on ties
func compareScores(a, b HighScore) int {
	if a.ClearTimeMs != b.ClearTimeMs {
		if a.ClearTimeMs < b.ClearTimeMs {
			return -1
		}
		return 1
	}
	return a.RecordedAt.Compare(b.RecordedAt)
}

// Rank inserts rec into a copy of table and truncates to limit
// A record for a name already present only replaces it when faster
func Rank(table []HighScore, rec HighScore, limit int) ([]HighScore, bool) {
	out := slices.Clone(table)

	if i := slices.IndexFunc(out, func(h HighScore) bool { return h.Name == rec.Name }); i >= 0 {
		if rec.ClearTimeMs >= out[i].ClearTimeMs {
			return out, false
		}
		out = slices.Delete(out, i, i+1)
	}

	out = append(out, rec)
	slices.SortStableFunc(out, compareScores)
	if len(out) > limit {
		out = out[:limit]
	}

	placed := slices.ContainsFunc(out, func(h HighScore) bool {
		return h.Name == rec.Name && h.ClearTimeMs == rec.ClearTimeMs && h.Session == rec.Session
	})
	return out, placed
}
