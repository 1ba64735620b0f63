package model

import (
	"time"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model/types"
)

// LeaderboardEntry is one row of a per-line top-N board. The board is a derived
// advisory view over the result store: capped, sorted by patch descending with
// ties broken by earliest submission, and rebuildable in full.
type LeaderboardEntry struct {
	bun.BaseModel `bun:"leaderboard_entries,alias:lb"`

	Line        types.LineCategory `bun:",pk" json:"line"`
	PlayerID    string             `bun:",pk" json:"playerId"`
	PatternID   int                `bun:",pk" json:"patternId"`
	Patch       float64            `json:"patch"`
	SubmittedAt time.Time          `json:"submittedAt"`
	Rank        int                `json:"rank"`
}
