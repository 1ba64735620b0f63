package model

import (
	"time"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

const (
	PatternStatusProposed = "proposed"
	PatternStatusAccepted = "accepted"
)

// Pattern is a specific chart of a Song that players perform against. Its level
// may be revised after the fact; revisions keep the pattern identity so results
// stay attached, and every revision appends a PatternLevelEdit.
type Pattern struct {
	bun.BaseModel `bun:"patterns,alias:p"`

	PatternID      int         `bun:",pk,autoincrement" json:"patternId"`
	SongID         int         `json:"songId"`
	Difficulty     string      `json:"difficulty"`
	Level          int         `json:"level"`
	Designer       null.String `bun:",nullzero" json:"designer,omitempty"`
	Status         string      `json:"status"`
	CreatedBy      string      `json:"createdBy"`
	LevelUpdatedAt time.Time   `json:"levelUpdatedAt"`
}

// IsStaleEdit reports whether a level edit carrying editedAt loses against the
// stored revision: strictly older loses, equal timestamps re-apply (last write
// wins on ties), newer always applies.
func (p *Pattern) IsStaleEdit(editedAt time.Time) bool {
	return editedAt.Before(p.LevelUpdatedAt)
}

// PatternLevelEdit is one record of the append-only level edit log, retained so
// disputes over retroactive reinterpretation stay auditable.
type PatternLevelEdit struct {
	bun.BaseModel `bun:"pattern_level_edits,alias:ple"`

	EditID    int       `bun:",pk,autoincrement" json:"editId"`
	PatternID int       `json:"patternId"`
	OldLevel  int       `json:"oldLevel"`
	NewLevel  int       `json:"newLevel"`
	EditedBy  string    `json:"editedBy"`
	EditedAt  time.Time `json:"editedAt"`
}
