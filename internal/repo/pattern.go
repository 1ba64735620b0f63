package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/repo/selector"
)

type Pattern struct {
	db      *bun.DB
	sel     selector.S[model.Pattern]
	editSel selector.S[model.PatternLevelEdit]
}

func NewPattern(db *bun.DB) *Pattern {
	return &Pattern{
		db:      db,
		sel:     selector.New[model.Pattern](db),
		editSel: selector.New[model.PatternLevelEdit](db),
	}
}

func (r *Pattern) GetPatternByID(ctx context.Context, patternId int) (*model.Pattern, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pattern_id = ?", patternId)
	})
}

func (r *Pattern) GetPatternsBySongID(ctx context.Context, songId int) ([]*model.Pattern, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("song_id = ?", songId).Order("pattern_id ASC")
	})
}

func (r *Pattern) CreatePattern(ctx context.Context, pattern *model.Pattern) error {
	_, err := r.db.NewInsert().
		Model(pattern).
		Exec(ctx)
	return err
}

// GetPatternForShare takes a share lock on the pattern row for the enclosing
// transaction. Writers attaching results to the pattern hold it so a
// concurrent removal (which takes FOR UPDATE) cannot commit in between.
func (r *Pattern) GetPatternForShare(ctx context.Context, tx bun.Tx, patternId int) (*model.Pattern, error) {
	pattern := new(model.Pattern)
	err := tx.NewSelect().
		Model(pattern).
		Where("pattern_id = ?", patternId).
		For("SHARE").
		Scan(ctx)
	if err != nil {
		return nil, wrapNoRows(err)
	}
	return pattern, nil
}

// GetPatternForUpdate locks the pattern row for the duration of the enclosing
// transaction, serializing concurrent level edits on the same pattern.
func (r *Pattern) GetPatternForUpdate(ctx context.Context, tx bun.Tx, patternId int) (*model.Pattern, error) {
	pattern := new(model.Pattern)
	err := tx.NewSelect().
		Model(pattern).
		Where("pattern_id = ?", patternId).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, wrapNoRows(err)
	}
	return pattern, nil
}

func (r *Pattern) UpdatePatternLevel(ctx context.Context, tx bun.Tx, patternId int, level int, editedAt time.Time) error {
	_, err := tx.NewUpdate().
		Model((*model.Pattern)(nil)).
		Set("level = ?", level).
		Set("level_updated_at = ?", editedAt).
		Where("pattern_id = ?", patternId).
		Exec(ctx)
	return err
}

func (r *Pattern) CreateLevelEdit(ctx context.Context, tx bun.Tx, edit *model.PatternLevelEdit) error {
	_, err := tx.NewInsert().
		Model(edit).
		Exec(ctx)
	return err
}

func (r *Pattern) GetLevelEdits(ctx context.Context, patternId int) ([]*model.PatternLevelEdit, error) {
	return r.editSel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("pattern_id = ?", patternId).Order("edited_at ASC", "edit_id ASC")
	})
}

func (r *Pattern) DeletePattern(ctx context.Context, tx bun.Tx, patternId int) error {
	_, err := tx.NewDelete().
		Model((*model.Pattern)(nil)).
		Where("pattern_id = ?", patternId).
		Exec(ctx)
	return err
}
