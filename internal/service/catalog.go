package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"

	"platinalab.dev/backend/internal/model"
	modelcache "platinalab.dev/backend/internal/model/cache"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/repo"
	"platinalab.dev/backend/internal/util"
)

// Catalog is the reconciliation engine for client-proposed catalog mutations.
// Additions are low-risk and auto-accepted with dedup; level edits keep an
// audit trail and reject out-of-order deliveries.
type Catalog struct {
	DB          *bun.DB
	SongRepo    *repo.Song
	ResultRepo  *repo.Result
	PatternRepo *repo.Pattern
}

func NewCatalog(db *bun.DB, songRepo *repo.Song, resultRepo *repo.Result, patternRepo *repo.Pattern) *Catalog {
	return &Catalog{
		DB:          db,
		SongRepo:    songRepo,
		ResultRepo:  resultRepo,
		PatternRepo: patternRepo,
	}
}

// Cache: songs, 1hr
func (s *Catalog) GetSongs(ctx context.Context) ([]*model.Song, error) {
	var songs []*model.Song
	err := modelcache.Songs.MutexGetSet(&songs, func() ([]*model.Song, error) {
		return s.SongRepo.GetSongs(ctx)
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return songs, nil
}

// Cache: patterns#songId:{songId}, 1hr
func (s *Catalog) GetPatternsBySongID(ctx context.Context, songId int) ([]*model.Pattern, error) {
	if _, err := s.SongRepo.GetSongByID(ctx, songId); err != nil {
		return nil, err
	}
	var patterns []*model.Pattern
	_, err := modelcache.PatternsBySongID.MutexGetSet(itoa(songId), &patterns, func() ([]*model.Pattern, error) {
		patterns, err := s.PatternRepo.GetPatternsBySongID(ctx, songId)
		if errors.Is(err, plerr.ErrNotFound) {
			return []*model.Pattern{}, nil
		}
		return patterns, err
	}, time.Hour)
	if err != nil {
		return nil, err
	}
	return patterns, nil
}

func (s *Catalog) GetLevelEdits(ctx context.Context, patternId int) ([]*model.PatternLevelEdit, error) {
	if _, err := s.PatternRepo.GetPatternByID(ctx, patternId); err != nil {
		return nil, err
	}
	edits, err := s.PatternRepo.GetLevelEdits(ctx, patternId)
	if errors.Is(err, plerr.ErrNotFound) {
		return []*model.PatternLevelEdit{}, nil
	}
	return edits, err
}

// ProposeSong accepts a catalog addition, coalescing with an existing song of
// the same normalized title and line instead of duplicating.
func (s *Catalog) ProposeSong(ctx context.Context, req *types.ProposeSongRequest) (*model.Song, error) {
	if !req.Line.Valid() {
		return nil, plerr.ErrInvalidInput.Msg("invalid line category: %s", req.Line)
	}

	normalized := util.NormalizeTitle(req.Title)
	if normalized == "" {
		return nil, plerr.ErrInvalidInput.Msg("song title must not be empty")
	}

	existing, err := s.SongRepo.GetSongByNormalizedTitle(ctx, normalized, req.Line)
	if err == nil {
		return existing, nil
	} else if !errors.Is(err, plerr.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	song, err := s.SongRepo.CreateSong(ctx, &model.Song{
		Title:           req.Title,
		NormalizedTitle: normalized,
		Artist:          req.Artist,
		BPM:             req.BPM,
		Line:            req.Line,
		CreatedBy:       req.SourceClient,
		CreatedAt:       &now,
	})
	if err != nil {
		return nil, err
	}

	if err := modelcache.Songs.Delete(); err != nil {
		log.Warn().Err(err).Msg("failed to flush songs cache")
	}

	log.Info().
		Int("songId", song.SongID).
		Str("line", string(song.Line)).
		Str("client", req.SourceClient).
		Msg("accepted song proposal")

	return song, nil
}

func (s *Catalog) ProposePattern(ctx context.Context, req *types.ProposePatternRequest) (*model.Pattern, error) {
	if _, err := s.SongRepo.GetSongByID(ctx, req.SongID); err != nil {
		return nil, err
	}

	pattern := &model.Pattern{
		SongID:         req.SongID,
		Difficulty:     req.Difficulty,
		Level:          req.Level,
		Designer:       null.NewString(req.Designer, req.Designer != ""),
		Status:         model.PatternStatusAccepted,
		CreatedBy:      req.SourceClient,
		LevelUpdatedAt: time.Now().UTC(),
	}
	if err := s.PatternRepo.CreatePattern(ctx, pattern); err != nil {
		return nil, err
	}

	if err := modelcache.PatternsBySongID.Delete(itoa(req.SongID)); err != nil {
		log.Warn().Err(err).Msg("failed to flush patterns cache")
	}

	log.Info().
		Int("patternId", pattern.PatternID).
		Int("songId", pattern.SongID).
		Str("client", req.SourceClient).
		Msg("accepted pattern proposal")

	return pattern, nil
}

// ProposeLevelEdit applies a level revision under last-write-wins by edit
// timestamp. A delivery older than the stored value is rejected as StaleEdit
// so out-of-order arrival cannot clobber a newer correction; the full history
// is retained for disputes.
func (s *Catalog) ProposeLevelEdit(ctx context.Context, patternId int, req *types.ProposeLevelEditRequest) (*model.Pattern, error) {
	var pattern *model.Pattern
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		pattern, err = s.PatternRepo.GetPatternForUpdate(ctx, tx, patternId)
		if errors.Is(err, plerr.ErrNotFound) {
			return plerr.ErrUnknownPattern.Msg("pattern %d is not in the catalog", patternId)
		} else if err != nil {
			return err
		}

		if pattern.IsStaleEdit(req.EditedAt) {
			return plerr.ErrStaleEdit.WithExtras(plerr.Extras{
				"currentLevel":   pattern.Level,
				"levelUpdatedAt": pattern.LevelUpdatedAt,
			})
		}

		edit := &model.PatternLevelEdit{
			PatternID: patternId,
			OldLevel:  pattern.Level,
			NewLevel:  req.Level,
			EditedBy:  req.SourceClient,
			EditedAt:  req.EditedAt,
		}
		if err := s.PatternRepo.CreateLevelEdit(ctx, tx, edit); err != nil {
			return err
		}
		if err := s.PatternRepo.UpdatePatternLevel(ctx, tx, patternId, req.Level, req.EditedAt); err != nil {
			return err
		}

		pattern.Level = req.Level
		pattern.LevelUpdatedAt = req.EditedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := modelcache.PatternsBySongID.Delete(itoa(pattern.SongID)); err != nil {
		log.Warn().Err(err).Msg("failed to flush patterns cache")
	}

	log.Info().
		Int("patternId", patternId).
		Int("level", req.Level).
		Str("client", req.SourceClient).
		Msg("applied level edit")

	return pattern, nil
}

// RemovePattern deletes a mistaken proposal. Any pattern referenced by stored
// results is untouchable: cascading would silently destroy player history.
// The FOR UPDATE lock on the pattern row blocks submissions (which take a
// share lock while writing) so no result can land between the count and the
// delete, and the count itself runs inside the same transaction.
func (s *Catalog) RemovePattern(ctx context.Context, patternId int) error {
	var pattern *model.Pattern
	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		pattern, err = s.PatternRepo.GetPatternForUpdate(ctx, tx, patternId)
		if err != nil {
			return err
		}

		count, err := s.ResultRepo.CountResultsByPattern(ctx, tx, patternId)
		if err != nil {
			return err
		}
		if count > 0 {
			return plerr.ErrOrphanedResult.Msg("pattern %d is referenced by %d results", patternId, count)
		}
		return s.PatternRepo.DeletePattern(ctx, tx, patternId)
	})
	if err != nil {
		return err
	}

	if err := modelcache.PatternsBySongID.Delete(itoa(pattern.SongID)); err != nil {
		log.Warn().Err(err).Msg("failed to flush patterns cache")
	}
	return nil
}
