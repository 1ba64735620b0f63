package model

import (
	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model/types"
)

// PlayerStats caches per (player, line) counters derived from the result store.
// Counters are cumulative thresholds: a perfect decode counts toward clears,
// full combos and perfect decodes alike. The row is never authoritative; it
// must always equal a fold over the player's current results for the line.
type PlayerStats struct {
	bun.BaseModel `bun:"player_stats,alias:ps"`

	PlayerID       string             `bun:",pk" json:"playerId"`
	Line           types.LineCategory `bun:",pk" json:"line"`
	Clears         int                `json:"clears"`
	FullCombos     int                `json:"fullCombos"`
	PerfectDecodes int                `json:"perfectDecodes"`
	MaxPatch       float64            `json:"maxPatch"`
}

// Apply folds the delta between a replaced result and its replacement into the
// counters: the old contribution is removed, the new one added. MaxPatch stays
// exact incrementally because the merge ordering never lets a stored patch
// value regress.
func (s *PlayerStats) Apply(old, new *Result) {
	if old != nil {
		s.fold(old.ClearStatus, -1)
	}
	s.fold(new.ClearStatus, 1)
	if new.Patch > s.MaxPatch {
		s.MaxPatch = new.Patch
	}
}

// Accumulate folds a single stored result into the counters; used by the full
// rebuild path.
func (s *PlayerStats) Accumulate(r *Result) {
	s.fold(r.ClearStatus, 1)
	if r.Patch > s.MaxPatch {
		s.MaxPatch = r.Patch
	}
}

func (s *PlayerStats) fold(status types.ClearStatus, sign int) {
	if status.Reaches(types.ClearStatusClear) {
		s.Clears += sign
	}
	if status.Reaches(types.ClearStatusFullCombo) {
		s.FullCombos += sign
	}
	if status.Reaches(types.ClearStatusPerfectDecode) {
		s.PerfectDecodes += sign
	}
}
