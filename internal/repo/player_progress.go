package repo

import (
	"context"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/repo/selector"
)

type PlayerProgress struct {
	db  *bun.DB
	sel selector.S[model.PlayerProgress]
}

func NewPlayerProgress(db *bun.DB) *PlayerProgress {
	return &PlayerProgress{
		db:  db,
		sel: selector.New[model.PlayerProgress](db),
	}
}

func (r *PlayerProgress) GetLatestProgress(ctx context.Context, playerId string, line types.LineCategory) (*model.PlayerProgress, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("player_id = ?", playerId).
			Where("line = ?", line).
			Order("recorded_at DESC", "progress_id DESC").
			Limit(1)
	})
}

func (r *PlayerProgress) GetProgressHistory(ctx context.Context, playerId string, line types.LineCategory) ([]*model.PlayerProgress, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("player_id = ?", playerId).
			Where("line = ?", line).
			Order("recorded_at ASC", "progress_id ASC")
	})
}

func (r *PlayerProgress) CreateProgress(ctx context.Context, progress *model.PlayerProgress) error {
	_, err := r.db.NewInsert().
		Model(progress).
		Exec(ctx)
	return err
}
