package model

import (
	"time"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model/types"
)

// Result is a player's best known outcome for one pattern, not history:
// at most one row exists per (player, pattern).
type Result struct {
	bun.BaseModel `bun:"results,alias:r"`

	PlayerID     string            `bun:",pk" json:"playerId"`
	PatternID    int               `bun:",pk" json:"patternId"`
	ClearStatus  types.ClearStatus `json:"clearStatus"`
	Patch        float64           `json:"patch"`
	Score        int               `json:"score"`
	Judge        float64           `json:"judge"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	SourceClient string            `json:"sourceClient"`
}

// Supersedes reports whether r replaces old under the merge ordering: neither
// dimension may regress and at least one must strictly improve. A submission
// that trades a higher clear status against a lower patch (or the reverse) is
// kept out on purpose; resubmissions of a known best are plain non-improvements.
func (r *Result) Supersedes(old *Result) bool {
	if old == nil {
		return true
	}
	if r.ClearStatus.Rank() < old.ClearStatus.Rank() || r.Patch < old.Patch {
		return false
	}
	return r.ClearStatus.Rank() > old.ClearStatus.Rank() || r.Patch > old.Patch
}

const (
	OutcomeAccepted  = "accepted"
	OutcomeUnchanged = "unchanged"
)

// SubmitOutcome is the result of a merge decision. Result always holds the
// stored best after the call; Previous holds the replaced row on acceptance.
type SubmitOutcome struct {
	Outcome  string  `json:"outcome"`
	Result   *Result `json:"result"`
	Previous *Result `json:"previous,omitempty"`
}

// ArchiveEntry is one row of a player's result dump as served to clients.
type ArchiveEntry struct {
	Result

	IsFullCombo bool `json:"isFullCombo"`
	IsMaxPatch  bool `json:"isMaxPatch"`
}
