package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearStatusOrdering(t *testing.T) {
	ordered := []ClearStatus{ClearStatusNone, ClearStatusClear, ClearStatusFullCombo, ClearStatusPerfectDecode}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(), "%s should outrank %s", ordered[i], ordered[i-1])
	}
}

func TestClearStatusReaches(t *testing.T) {
	assert.True(t, ClearStatusPerfectDecode.Reaches(ClearStatusClear))
	assert.True(t, ClearStatusPerfectDecode.Reaches(ClearStatusFullCombo))
	assert.True(t, ClearStatusPerfectDecode.Reaches(ClearStatusPerfectDecode))
	assert.True(t, ClearStatusFullCombo.Reaches(ClearStatusClear))
	assert.False(t, ClearStatusClear.Reaches(ClearStatusFullCombo))
	assert.False(t, ClearStatusNone.Reaches(ClearStatusClear))
	// none is not a countable threshold
	assert.False(t, ClearStatusClear.Reaches(ClearStatusNone))
}

func TestClearStatusValid(t *testing.T) {
	assert.True(t, ClearStatusNone.Valid())
	assert.False(t, ClearStatus("miss").Valid())
	assert.Equal(t, -1, ClearStatus("miss").Rank())
}

func TestLineCategoryValid(t *testing.T) {
	for _, l := range Lines {
		assert.True(t, l.Valid())
	}
	assert.False(t, LineCategory("8L").Valid())
}
