package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsStaleEdit(t *testing.T) {
	stored := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	pattern := &Pattern{
		PatternID:      1,
		Level:          27,
		LevelUpdatedAt: stored,
	}

	// an edit delivered out of order must not clobber a newer correction
	assert.True(t, pattern.IsStaleEdit(stored.Add(-time.Hour)))
	assert.True(t, pattern.IsStaleEdit(stored.Add(-time.Nanosecond)))

	// equal timestamps re-apply: last write wins on ties
	assert.False(t, pattern.IsStaleEdit(stored))

	assert.False(t, pattern.IsStaleEdit(stored.Add(time.Nanosecond)))
	assert.False(t, pattern.IsStaleEdit(stored.Add(time.Hour)))
}
