package model

import (
	"time"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model/types"
)

// PlayerProgress is one snapshot of a player's per-line progress total (the sum
// of their top-50 patch values). Rows are append-only and strictly increasing
// per (player, line), forming a monotone history.
type PlayerProgress struct {
	bun.BaseModel `bun:"player_progress,alias:pp"`

	ProgressID int                `bun:",pk,autoincrement" json:"progressId"`
	PlayerID   string             `json:"playerId"`
	Line       types.LineCategory `json:"line"`
	Total      float64            `json:"total"`
	RecordedAt time.Time          `json:"recordedAt"`
}
