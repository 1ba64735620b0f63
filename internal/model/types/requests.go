package types

import "time"

// SubmitRequest is a single decode result reported by a desktop client.
// The player and source client identifiers are assumed to be already
// authenticated by the transport layer.
type SubmitRequest struct {
	PlayerID     string      `json:"playerId" validate:"required,max=64"`
	PatternID    int         `json:"patternId" validate:"required,min=1"`
	ClearStatus  ClearStatus `json:"clearStatus" validate:"required,oneof=none clear full_combo perfect_decode"`
	Patch        float64     `json:"patch" validate:"min=0,max=100"`
	Score        int         `json:"score" validate:"min=0"`
	Judge        float64     `json:"judge" validate:"min=0,max=100"`
	SourceClient string      `json:"sourceClient" validate:"required,max=64"`
}

type ProposeSongRequest struct {
	Title        string       `json:"title" validate:"required,max=256"`
	Artist       string       `json:"artist" validate:"max=256"`
	BPM          string       `json:"bpm" validate:"max=32"`
	Line         LineCategory `json:"line" validate:"required,oneof=4L 4L+ 6L 6L+"`
	SourceClient string       `json:"sourceClient" validate:"required,max=64"`
}

type ProposePatternRequest struct {
	SongID       int    `json:"songId" validate:"required,min=1"`
	Difficulty   string `json:"difficulty" validate:"required,max=16"`
	Level        int    `json:"level" validate:"required,min=1,max=50"`
	Designer     string `json:"designer" validate:"max=64"`
	SourceClient string `json:"sourceClient" validate:"required,max=64"`
}

// ProposeLevelEditRequest retroactively revises a pattern's level. EditedAt is
// the client-side timestamp of the correction and drives the stale-edit check.
type ProposeLevelEditRequest struct {
	Level        int       `json:"level" validate:"required,min=1,max=50"`
	EditedAt     time.Time `json:"editedAt" validate:"required"`
	SourceClient string    `json:"sourceClient" validate:"required,max=64"`
}

// PurgeCacheRequest flushes a named cache, or every cache when Name is empty.
type PurgeCacheRequest struct {
	Name string `json:"name" validate:"max=64"`
}
