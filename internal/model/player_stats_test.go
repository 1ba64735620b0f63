package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"platinalab.dev/backend/internal/model/types"
)

func TestPlayerStatsApplyNewResult(t *testing.T) {
	s := &PlayerStats{PlayerID: "P", Line: types.Line4}
	s.Apply(nil, result(types.ClearStatusPerfectDecode, 97.5))

	// a perfect decode reaches every threshold
	assert.Equal(t, 1, s.Clears)
	assert.Equal(t, 1, s.FullCombos)
	assert.Equal(t, 1, s.PerfectDecodes)
	assert.Equal(t, 97.5, s.MaxPatch)
}

func TestPlayerStatsApplyUpgrade(t *testing.T) {
	s := &PlayerStats{PlayerID: "P", Line: types.Line4}
	old := result(types.ClearStatusClear, 80)
	s.Apply(nil, old)
	s.Apply(old, result(types.ClearStatusFullCombo, 95))

	assert.Equal(t, 1, s.Clears)
	assert.Equal(t, 1, s.FullCombos)
	assert.Equal(t, 0, s.PerfectDecodes)
	assert.Equal(t, 95.0, s.MaxPatch)
}

func TestPlayerStatsApplyNoneDoesNotCount(t *testing.T) {
	s := &PlayerStats{PlayerID: "P", Line: types.Line6}
	s.Apply(nil, result(types.ClearStatusNone, 42))

	assert.Equal(t, 0, s.Clears)
	assert.Equal(t, 0, s.FullCombos)
	assert.Equal(t, 0, s.PerfectDecodes)
	assert.Equal(t, 42.0, s.MaxPatch)
}

func TestPlayerStatsIncrementalMatchesRescan(t *testing.T) {
	// the incremental fold must equal a from-scratch fold over the final rows
	sequence := []struct {
		old *Result
		new *Result
	}{
		{nil, result(types.ClearStatusClear, 60)},
		{result(types.ClearStatusClear, 60), result(types.ClearStatusFullCombo, 75)},
		{nil, result(types.ClearStatusPerfectDecode, 99)},
	}

	incremental := &PlayerStats{PlayerID: "P", Line: types.Line4P}
	for _, step := range sequence {
		incremental.Apply(step.old, step.new)
	}

	rescan := &PlayerStats{PlayerID: "P", Line: types.Line4P}
	for _, r := range []*Result{
		result(types.ClearStatusFullCombo, 75),
		result(types.ClearStatusPerfectDecode, 99),
	} {
		rescan.Accumulate(r)
	}

	assert.Equal(t, rescan, incremental)
}
