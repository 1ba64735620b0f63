package rankutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
)

func entry(player string, pattern int, patch float64, at int64) *model.LeaderboardEntry {
	return &model.LeaderboardEntry{
		Line:        types.Line4,
		PlayerID:    player,
		PatternID:   pattern,
		Patch:       patch,
		SubmittedAt: time.Unix(at, 0),
	}
}

func fullBoard(capacity int) []*model.LeaderboardEntry {
	board := make([]*model.LeaderboardEntry, 0, capacity)
	for i := 0; i < capacity; i++ {
		// scores 109, 108, ... down to 60
		board = append(board, entry(fmt.Sprintf("p%02d", i), i, float64(60+capacity-1-i), int64(i)))
	}
	return Renumber(board)
}

func TestInsertIntoEmptyBoard(t *testing.T) {
	board, changed := Insert(nil, entry("P", 1, 80, 1), 50)
	assert.True(t, changed)
	require.Len(t, board, 1)
	assert.Equal(t, 1, board[0].Rank)
}

func TestInsertKeepsDescendingOrder(t *testing.T) {
	board, _ := Insert(nil, entry("a", 1, 70, 1), 50)
	board, _ = Insert(board, entry("b", 2, 90, 2), 50)
	board, _ = Insert(board, entry("c", 3, 80, 3), 50)

	require.Len(t, board, 3)
	assert.Equal(t, "b", board[0].PlayerID)
	assert.Equal(t, "c", board[1].PlayerID)
	assert.Equal(t, "a", board[2].PlayerID)
	for i, e := range board {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestInsertTieBrokenByEarliestSubmission(t *testing.T) {
	board, _ := Insert(nil, entry("late", 1, 85, 100), 50)
	board, _ = Insert(board, entry("early", 2, 85, 5), 50)

	assert.Equal(t, "early", board[0].PlayerID)
	assert.Equal(t, "late", board[1].PlayerID)
}

func TestInsertReplacesSamePlayerPattern(t *testing.T) {
	board, _ := Insert(nil, entry("P", 1, 80, 1), 50)
	board, changed := Insert(board, entry("P", 1, 95, 2), 50)

	assert.True(t, changed)
	require.Len(t, board, 1)
	assert.Equal(t, 95.0, board[0].Patch)
}

func TestInsertBelowCutoffIsDropped(t *testing.T) {
	board := fullBoard(50)
	require.Equal(t, 60.0, board[49].Patch)

	next, changed := Insert(board, entry("newcomer", 99, 55, 1000), 50)

	assert.False(t, changed)
	assert.Len(t, next, 50)
	assert.Equal(t, 60.0, next[49].Patch)
}

func TestInsertAboveCutoffEvictsTail(t *testing.T) {
	board := fullBoard(50)
	tail := board[49]

	next, changed := Insert(board, entry("newcomer", 99, 61.5, 1000), 50)

	assert.True(t, changed)
	require.Len(t, next, 50)
	for _, e := range next {
		assert.NotEqual(t, tail.PlayerID, e.PlayerID)
	}
}

func TestInsertTieAtCutoffFollowsBoardOrdering(t *testing.T) {
	// a tail-score tie is decided by the full ordering: earlier submission
	// outranks the tail and evicts it, later submission falls below the cutoff
	board := fullBoard(50)
	require.Equal(t, 60.0, board[49].Patch)
	require.Equal(t, int64(49), board[49].SubmittedAt.Unix())

	next, changed := Insert(board, entry("latecomer", 99, 60, 1000), 50)
	assert.False(t, changed)
	assert.Len(t, next, 50)

	next, changed = Insert(board, entry("earlybird", 98, 60, 10), 50)
	assert.True(t, changed)
	require.Len(t, next, 50)
	assert.Equal(t, "earlybird", next[49].PlayerID)

	// incremental insert must agree with a full rebuild over the same rows
	rebuilt := Build(append(fullBoard(50), entry("earlybird", 98, 60, 10)), 50)
	assert.Equal(t, rebuilt[49].PlayerID, next[49].PlayerID)
}

func TestBoardNeverExceedsCapacity(t *testing.T) {
	var board []*model.LeaderboardEntry
	for i := 0; i < 80; i++ {
		board, _ = Insert(board, entry(fmt.Sprintf("p%d", i), i, float64(i), int64(i)), 50)
		assert.LessOrEqual(t, len(board), 50)
		for j := 1; j < len(board); j++ {
			assert.True(t, Less(board[j-1], board[j]) || !Less(board[j], board[j-1]),
				"board must stay sorted at step %d", i)
		}
	}
}

func TestBuildMatchesIterativeInsert(t *testing.T) {
	entries := []*model.LeaderboardEntry{
		entry("a", 1, 70, 3),
		entry("b", 2, 90, 1),
		entry("c", 3, 80, 2),
		entry("d", 4, 90, 0),
	}

	built := Build(entries, 3)

	require.Len(t, built, 3)
	assert.Equal(t, "d", built[0].PlayerID) // earlier of the two 90s
	assert.Equal(t, "b", built[1].PlayerID)
	assert.Equal(t, "c", built[2].PlayerID)
}
