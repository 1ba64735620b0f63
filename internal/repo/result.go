package repo

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/repo/selector"
)

type Result struct {
	db  *bun.DB
	sel selector.S[model.Result]
}

func NewResult(db *bun.DB) *Result {
	return &Result{
		db:  db,
		sel: selector.New[model.Result](db),
	}
}

func (r *Result) GetResult(ctx context.Context, playerId string, patternId int) (*model.Result, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("player_id = ?", playerId).Where("pattern_id = ?", patternId)
	})
}

// LockKey serializes transactions merging into (playerId, patternId) before
// any row exists for the key: FOR UPDATE cannot lock an absent row, so two
// first submissions for the same key would otherwise both read not-found,
// both pass the merge check, and the later commit would win regardless of
// which result is better.
func (r *Result) LockKey(ctx context.Context, tx bun.Tx, playerId string, patternId int) error {
	return lockAdvisory(ctx, tx, advisoryKey("results", fmt.Sprintf("%s|%d", playerId, patternId)))
}

// GetResultForUpdate locks the player's row for this pattern so a slower
// concurrent submission for the same key cannot interleave between the merge
// decision and the write. Callers must take LockKey first; the row lock alone
// cannot cover the first submission of a key.
func (r *Result) GetResultForUpdate(ctx context.Context, tx bun.Tx, playerId string, patternId int) (*model.Result, error) {
	result := new(model.Result)
	err := tx.NewSelect().
		Model(result).
		Where("player_id = ?", playerId).
		Where("pattern_id = ?", patternId).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, wrapNoRows(err)
	}
	return result, nil
}

func (r *Result) UpsertResult(ctx context.Context, tx bun.Tx, result *model.Result) error {
	_, err := tx.NewInsert().
		Model(result).
		On("CONFLICT (player_id, pattern_id) DO UPDATE").
		Set("clear_status = EXCLUDED.clear_status").
		Set("patch = EXCLUDED.patch").
		Set("score = EXCLUDED.score").
		Set("judge = EXCLUDED.judge").
		Set("submitted_at = EXCLUDED.submitted_at").
		Set("source_client = EXCLUDED.source_client").
		Exec(ctx)
	return err
}

func (r *Result) GetResultsByPlayer(ctx context.Context, playerId string) ([]*model.Result, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("player_id = ?", playerId).Order("pattern_id ASC")
	})
}

// CountResultsByPattern counts through idb so callers deciding on the count
// inside a transaction observe that transaction's view, not a fresh snapshot.
func (r *Result) CountResultsByPattern(ctx context.Context, idb bun.IDB, patternId int) (int, error) {
	return idb.NewSelect().
		Model((*model.Result)(nil)).
		Where("pattern_id = ?", patternId).
		Count(ctx)
}

// GetResultsByLine scans every result attached to the line's patterns; the
// full-rescan repair path.
func (r *Result) GetResultsByLine(ctx context.Context, line types.LineCategory) ([]*model.Result, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Join("JOIN patterns AS p ON p.pattern_id = r.pattern_id").
			Join("JOIN songs AS s ON s.song_id = p.song_id").
			Where("s.line = ?", line).
			Order("r.player_id ASC", "r.pattern_id ASC")
	})
}

func (r *Result) GetPlayerIDs(ctx context.Context) ([]string, error) {
	var playerIds []string
	err := r.db.NewSelect().
		Model((*model.Result)(nil)).
		ColumnExpr("DISTINCT player_id").
		Order("player_id ASC").
		Scan(ctx, &playerIds)
	if err != nil {
		return nil, err
	}
	return playerIds, nil
}

// GetTopPatches returns the player's best patch values for the line, highest
// first, capped at limit.
func (r *Result) GetTopPatches(ctx context.Context, playerId string, line types.LineCategory, limit int) ([]float64, error) {
	var patches []float64
	err := r.db.NewSelect().
		Model((*model.Result)(nil)).
		Column("r.patch").
		Join("JOIN patterns AS p ON p.pattern_id = r.pattern_id").
		Join("JOIN songs AS s ON s.song_id = p.song_id").
		Where("r.player_id = ?", playerId).
		Where("s.line = ?", line).
		Order("r.patch DESC").
		Limit(limit).
		Scan(ctx, &patches)
	if err != nil {
		return nil, err
	}
	return patches, nil
}
