package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/uptrace/bun"
	"golang.org/x/sync/errgroup"

	"platinalab.dev/backend/internal/constant"
	"platinalab.dev/backend/internal/model"
	modelcache "platinalab.dev/backend/internal/model/cache"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/repo"
	"platinalab.dev/backend/internal/util/rankutil"
)

type Aggregation struct {
	DB              *bun.DB
	RedSync         *redsync.Redsync
	ResultRepo      *repo.Result
	StatsRepo       *repo.PlayerStats
	LeaderboardRepo *repo.Leaderboard
}

func NewAggregation(
	db *bun.DB,
	redSync *redsync.Redsync,
	resultRepo *repo.Result,
	statsRepo *repo.PlayerStats,
	leaderboardRepo *repo.Leaderboard,
) *Aggregation {
	return &Aggregation{
		DB:              db,
		RedSync:         redSync,
		ResultRepo:      resultRepo,
		StatsRepo:       statsRepo,
		LeaderboardRepo: leaderboardRepo,
	}
}

// Apply folds an accepted merge into the derived views inside the caller's
// transaction. The line advisory lock is taken first and serializes every
// derived-view writer for the line: the board rewrite is a DELETE+INSERT that
// row locks cannot make atomic, and the first stats row of a (player, line)
// has no row to lock at all.
func (s *Aggregation) Apply(ctx context.Context, tx bun.Tx, line types.LineCategory, old, new *model.Result) error {
	if err := s.LeaderboardRepo.LockLine(ctx, tx, line); err != nil {
		return err
	}

	stats, err := s.StatsRepo.GetStatsForUpdate(ctx, tx, new.PlayerID, line)
	if errors.Is(err, plerr.ErrNotFound) {
		stats = &model.PlayerStats{PlayerID: new.PlayerID, Line: line}
	} else if err != nil {
		return err
	}
	stats.Apply(old, new)
	if err := s.StatsRepo.UpsertStats(ctx, tx, stats); err != nil {
		return err
	}

	board, err := s.LeaderboardRepo.GetEntriesForUpdate(ctx, tx, line)
	if err != nil {
		return err
	}
	next, changed := rankutil.Insert(board, &model.LeaderboardEntry{
		Line:        line,
		PlayerID:    new.PlayerID,
		PatternID:   new.PatternID,
		Patch:       new.Patch,
		SubmittedAt: new.SubmittedAt,
	}, constant.LeaderboardCapacity)
	if !changed {
		return nil
	}
	return s.LeaderboardRepo.ReplaceEntries(ctx, tx, line, next)
}

// RebuildAll recomputes every derived view from the result store; the repair
// path for a corrupted cache table. Guarded by a distributed mutex so only one
// instance rebuilds at a time.
func (s *Aggregation) RebuildAll(ctx context.Context) error {
	mutex := s.RedSync.NewMutex(constant.RedsyncKeyRebuild)
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			log.Error().Err(err).Msg("failed to release rebuild mutex")
		}
	}()

	eg, egCtx := errgroup.WithContext(ctx)
	for _, line := range types.Lines {
		line := line
		eg.Go(func() error {
			return s.RebuildLine(egCtx, line)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return modelcache.FlushAll()
}

func (s *Aggregation) RebuildLine(ctx context.Context, line types.LineCategory) error {
	results, err := s.ResultRepo.GetResultsByLine(ctx, line)
	if errors.Is(err, plerr.ErrNotFound) {
		results = nil
	} else if err != nil {
		return err
	}

	grouped := lo.GroupBy(results, func(r *model.Result) string { return r.PlayerID })
	stats := make([]*model.PlayerStats, 0, len(grouped))
	for playerId, playerResults := range grouped {
		st := &model.PlayerStats{PlayerID: playerId, Line: line}
		for _, r := range playerResults {
			st.Accumulate(r)
		}
		stats = append(stats, st)
	}

	entries := lo.Map(results, func(r *model.Result, _ int) *model.LeaderboardEntry {
		return &model.LeaderboardEntry{
			Line:        line,
			PlayerID:    r.PlayerID,
			PatternID:   r.PatternID,
			Patch:       r.Patch,
			SubmittedAt: r.SubmittedAt,
		}
	})
	board := rankutil.Build(entries, constant.LeaderboardCapacity)

	err = s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := s.LeaderboardRepo.LockLine(ctx, tx, line); err != nil {
			return err
		}
		if err := s.StatsRepo.ReplaceByLine(ctx, tx, line, stats); err != nil {
			return err
		}
		return s.LeaderboardRepo.ReplaceEntries(ctx, tx, line, board)
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("line", string(line)).
		Int("players", len(stats)).
		Int("entries", len(board)).
		Msg("rebuilt aggregates for line")

	return nil
}

// FlushDerivedCaches drops the cached read views affected by a write to
// (playerId, line).
func FlushDerivedCaches(playerId string, line types.LineCategory) {
	if err := modelcache.LeaderboardByLine.Delete(string(line)); err != nil {
		log.Warn().Err(err).Str("line", string(line)).Msg("failed to flush leaderboard cache")
	}
	if err := modelcache.StatsByPlayerAndLine.Delete(fmt.Sprintf("%s|%s", playerId, line)); err != nil {
		log.Warn().Err(err).Str("playerId", playerId).Msg("failed to flush stats cache")
	}
	if err := modelcache.ArchiveByPlayerID.Delete(playerId); err != nil {
		log.Warn().Err(err).Str("playerId", playerId).Msg("failed to flush archive cache")
	}
}
