package repo

import (
	"context"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/repo/selector"
)

type PlayerStats struct {
	db  *bun.DB
	sel selector.S[model.PlayerStats]
}

func NewPlayerStats(db *bun.DB) *PlayerStats {
	return &PlayerStats{
		db:  db,
		sel: selector.New[model.PlayerStats](db),
	}
}

func (r *PlayerStats) GetStats(ctx context.Context, playerId string, line types.LineCategory) (*model.PlayerStats, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("player_id = ?", playerId).Where("line = ?", line)
	})
}

func (r *PlayerStats) GetStatsForUpdate(ctx context.Context, tx bun.Tx, playerId string, line types.LineCategory) (*model.PlayerStats, error) {
	stats := new(model.PlayerStats)
	err := tx.NewSelect().
		Model(stats).
		Where("player_id = ?", playerId).
		Where("line = ?", line).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, wrapNoRows(err)
	}
	return stats, nil
}

func (r *PlayerStats) UpsertStats(ctx context.Context, tx bun.Tx, stats *model.PlayerStats) error {
	_, err := tx.NewInsert().
		Model(stats).
		On("CONFLICT (player_id, line) DO UPDATE").
		Set("clears = EXCLUDED.clears").
		Set("full_combos = EXCLUDED.full_combos").
		Set("perfect_decodes = EXCLUDED.perfect_decodes").
		Set("max_patch = EXCLUDED.max_patch").
		Exec(ctx)
	return err
}

// ReplaceByLine rewrites every stats row of one line from a full recompute.
func (r *PlayerStats) ReplaceByLine(ctx context.Context, tx bun.Tx, line types.LineCategory, stats []*model.PlayerStats) error {
	_, err := tx.NewDelete().
		Model((*model.PlayerStats)(nil)).
		Where("line = ?", line).
		Exec(ctx)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return nil
	}
	_, err = tx.NewInsert().
		Model(&stats).
		Exec(ctx)
	return err
}
