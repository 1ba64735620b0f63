package model

import (
	"time"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model/types"
)

// Song is a catalog entry. Immutable once created except through reconciliation;
// (normalized_title, line) carries a unique index so concurrent proposals of the
// same song coalesce instead of duplicating.
type Song struct {
	bun.BaseModel `bun:"songs,alias:s"`

	SongID          int                `bun:",pk,autoincrement" json:"songId"`
	Title           string             `json:"title"`
	NormalizedTitle string             `json:"-"`
	Artist          string             `json:"artist"`
	BPM             string             `json:"bpm"`
	Line            types.LineCategory `json:"line"`
	CreatedBy       string             `json:"createdBy"`
	CreatedAt       *time.Time         `json:"createdAt"`
}
