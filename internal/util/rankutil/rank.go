// Package rankutil holds the pure ordering logic of the per-line leaderboards.
// Boards are ordered sequences capped at a fixed capacity; persistence is the
// caller's concern.
package rankutil

import (
	"sort"

	"platinalab.dev/backend/internal/model"
)

// Less is the board ordering: patch descending, ties broken by earliest
// submission, then by player and pattern for determinism.
func Less(a, b *model.LeaderboardEntry) bool {
	if a.Patch != b.Patch {
		return a.Patch > b.Patch
	}
	if !a.SubmittedAt.Equal(b.SubmittedAt) {
		return a.SubmittedAt.Before(b.SubmittedAt)
	}
	if a.PlayerID != b.PlayerID {
		return a.PlayerID < b.PlayerID
	}
	return a.PatternID < b.PatternID
}

// Insert places e into the board: any existing entry for e's (player, pattern)
// pair is removed first, then e competes for a slot under the ordering. When
// the board is full and e does not beat the tail, the board is returned
// unchanged and the second return is false. The cutoff uses the full board
// ordering, not the score alone: an entry tying the tail's score with an
// earlier submission outranks the tail and evicts it, exactly as it would had
// both been present at a rebuild.
func Insert(board []*model.LeaderboardEntry, e *model.LeaderboardEntry, capacity int) ([]*model.LeaderboardEntry, bool) {
	next := make([]*model.LeaderboardEntry, 0, len(board)+1)
	for _, cur := range board {
		if cur.PlayerID == e.PlayerID && cur.PatternID == e.PatternID {
			continue
		}
		next = append(next, cur)
	}

	replaced := len(next) != len(board)

	if len(next) >= capacity && !Less(e, next[len(next)-1]) {
		// below the cutoff: advisory views do not track it
		if !replaced {
			return board, false
		}
		return Renumber(next), true
	}

	next = append(next, e)
	sort.SliceStable(next, func(i, j int) bool { return Less(next[i], next[j]) })
	if len(next) > capacity {
		next = next[:capacity]
	}
	return Renumber(next), true
}

// Build folds a full result scan into a board from scratch; the rebuild path.
func Build(entries []*model.LeaderboardEntry, capacity int) []*model.LeaderboardEntry {
	sorted := make([]*model.LeaderboardEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i], sorted[j]) })
	if len(sorted) > capacity {
		sorted = sorted[:capacity]
	}
	return Renumber(sorted)
}

// Renumber rewrites Rank as the 1-based position of each entry.
func Renumber(board []*model.LeaderboardEntry) []*model.LeaderboardEntry {
	for i, e := range board {
		e.Rank = i + 1
	}
	return board
}
