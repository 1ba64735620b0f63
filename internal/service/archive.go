package service

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"

	"platinalab.dev/backend/internal/constant"
	"platinalab.dev/backend/internal/model"
	modelcache "platinalab.dev/backend/internal/model/cache"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/repo"
)

type Archive struct {
	ResultRepo *repo.Result
}

func NewArchive(resultRepo *repo.Result) *Archive {
	return &Archive{
		ResultRepo: resultRepo,
	}
}

// Cache: archive#playerId:{playerId}, 5min; flushed on accepted writes
func (s *Archive) GetPlayerArchive(ctx context.Context, playerId string) ([]*model.ArchiveEntry, error) {
	var archive []*model.ArchiveEntry
	_, err := modelcache.ArchiveByPlayerID.MutexGetSet(playerId, &archive, func() ([]*model.ArchiveEntry, error) {
		results, err := s.ResultRepo.GetResultsByPlayer(ctx, playerId)
		if errors.Is(err, plerr.ErrNotFound) {
			return []*model.ArchiveEntry{}, nil
		} else if err != nil {
			return nil, err
		}
		return lo.Map(results, func(r *model.Result, _ int) *model.ArchiveEntry {
			return &model.ArchiveEntry{
				Result:      *r,
				IsFullCombo: r.ClearStatus.Reaches(types.ClearStatusFullCombo),
				IsMaxPatch:  r.Patch >= constant.PatchScoreMax,
			}
		}), nil
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return archive, nil
}
