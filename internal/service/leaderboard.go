package service

import (
	"context"
	"errors"

	"platinalab.dev/backend/internal/app/appconfig"
	"platinalab.dev/backend/internal/model"
	modelcache "platinalab.dev/backend/internal/model/cache"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/repo"
)

type Leaderboard struct {
	Config          *appconfig.Config
	LeaderboardRepo *repo.Leaderboard
}

func NewLeaderboard(conf *appconfig.Config, leaderboardRepo *repo.Leaderboard) *Leaderboard {
	return &Leaderboard{
		Config:          conf,
		LeaderboardRepo: leaderboardRepo,
	}
}

// Cache: leaderboard#line:{line}, TTL from config; flushed on accepted writes
func (s *Leaderboard) GetLeaderboard(ctx context.Context, line types.LineCategory) ([]*model.LeaderboardEntry, error) {
	if !line.Valid() {
		return nil, plerr.ErrInvalidInput.Msg("invalid line category: %s", line)
	}

	var entries []*model.LeaderboardEntry
	_, err := modelcache.LeaderboardByLine.MutexGetSet(string(line), &entries, func() ([]*model.LeaderboardEntry, error) {
		entries, err := s.LeaderboardRepo.GetEntries(ctx, line)
		if errors.Is(err, plerr.ErrNotFound) {
			return []*model.LeaderboardEntry{}, nil
		}
		return entries, err
	}, s.Config.LeaderboardCacheTTL)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
