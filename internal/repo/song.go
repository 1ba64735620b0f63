package repo

import (
	"context"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/repo/selector"
)

type Song struct {
	db  *bun.DB
	sel selector.S[model.Song]
}

func NewSong(db *bun.DB) *Song {
	return &Song{
		db:  db,
		sel: selector.New[model.Song](db),
	}
}

func (r *Song) GetSongs(ctx context.Context) ([]*model.Song, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("song_id ASC")
	})
}

func (r *Song) GetSongByID(ctx context.Context, songId int) (*model.Song, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("song_id = ?", songId)
	})
}

func (r *Song) GetSongByNormalizedTitle(ctx context.Context, normalizedTitle string, line types.LineCategory) (*model.Song, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("normalized_title = ?", normalizedTitle).Where("line = ?", line)
	})
}

// CreateSong inserts song, coalescing with a concurrent proposal of the same
// (normalized_title, line) instead of duplicating: on conflict the existing row
// is re-read and returned.
func (r *Song) CreateSong(ctx context.Context, song *model.Song) (*model.Song, error) {
	res, err := r.db.NewInsert().
		Model(song).
		On("CONFLICT (normalized_title, line) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return r.GetSongByNormalizedTitle(ctx, song.NormalizedTitle, song.Line)
	}
	return song, nil
}
