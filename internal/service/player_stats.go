package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"platinalab.dev/backend/internal/model"
	modelcache "platinalab.dev/backend/internal/model/cache"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/repo"
)

type PlayerStats struct {
	StatsRepo    *repo.PlayerStats
	ProgressRepo *repo.PlayerProgress
}

func NewPlayerStats(statsRepo *repo.PlayerStats, progressRepo *repo.PlayerProgress) *PlayerStats {
	return &PlayerStats{
		StatsRepo:    statsRepo,
		ProgressRepo: progressRepo,
	}
}

// Cache: stats#playerId|line:{playerId}|{line}, 10min; flushed on accepted writes
func (s *PlayerStats) GetStats(ctx context.Context, playerId string, line types.LineCategory) (*model.PlayerStats, error) {
	if !line.Valid() {
		return nil, plerr.ErrInvalidInput.Msg("invalid line category: %s", line)
	}

	var stats model.PlayerStats
	_, err := modelcache.StatsByPlayerAndLine.MutexGetSet(fmt.Sprintf("%s|%s", playerId, line), &stats, func() (model.PlayerStats, error) {
		stats, err := s.StatsRepo.GetStats(ctx, playerId, line)
		if errors.Is(err, plerr.ErrNotFound) {
			// a player with no results has all-zero counters
			return model.PlayerStats{PlayerID: playerId, Line: line}, nil
		} else if err != nil {
			return model.PlayerStats{}, err
		}
		return *stats, nil
	}, time.Minute*10)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *PlayerStats) GetProgressHistory(ctx context.Context, playerId string, line types.LineCategory) ([]*model.PlayerProgress, error) {
	if !line.Valid() {
		return nil, plerr.ErrInvalidInput.Msg("invalid line category: %s", line)
	}

	history, err := s.ProgressRepo.GetProgressHistory(ctx, playerId, line)
	if errors.Is(err, plerr.ErrNotFound) {
		return []*model.PlayerProgress{}, nil
	}
	return history, err
}
