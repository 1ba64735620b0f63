package repo

import (
	"context"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/repo/selector"
)

type Leaderboard struct {
	db  *bun.DB
	sel selector.S[model.LeaderboardEntry]
}

func NewLeaderboard(db *bun.DB) *Leaderboard {
	return &Leaderboard{
		db:  db,
		sel: selector.New[model.LeaderboardEntry](db),
	}
}

// LockLine serializes every transaction mutating the line's board and stats.
// The board rewrite is a DELETE+INSERT, which row locks on the current entries
// cannot make atomic: a concurrent writer either locks nothing on an empty
// board or rewrites from a statement snapshot missing the other writer's
// committed rows, dropping them.
func (r *Leaderboard) LockLine(ctx context.Context, tx bun.Tx, line types.LineCategory) error {
	return lockAdvisory(ctx, tx, advisoryKey("leaderboard", string(line)))
}

func (r *Leaderboard) GetEntries(ctx context.Context, line types.LineCategory) ([]*model.LeaderboardEntry, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("line = ?", line).Order("rank ASC")
	})
}

// GetEntriesForUpdate reads the line's board inside the enclosing transaction.
// Callers must hold LockLine; the row locks taken here only shield the read
// rows themselves.
func (r *Leaderboard) GetEntriesForUpdate(ctx context.Context, tx bun.Tx, line types.LineCategory) ([]*model.LeaderboardEntry, error) {
	var entries []*model.LeaderboardEntry
	err := tx.NewSelect().
		Model(&entries).
		Where("line = ?", line).
		Order("rank ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceEntries rewrites a line's board wholesale. Boards cap at 50 rows, so
// a full rewrite is cheaper than targeted rank shuffling.
func (r *Leaderboard) ReplaceEntries(ctx context.Context, tx bun.Tx, line types.LineCategory, entries []*model.LeaderboardEntry) error {
	_, err := tx.NewDelete().
		Model((*model.LeaderboardEntry)(nil)).
		Where("line = ?", line).
		Exec(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	_, err = tx.NewInsert().
		Model(&entries).
		Exec(ctx)
	return err
}
