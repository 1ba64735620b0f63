package progresswkr

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"go.uber.org/fx"

	"platinalab.dev/backend/internal/app/appconfig"
	"platinalab.dev/backend/internal/constant"
	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/repo"
)

type WorkerDeps struct {
	fx.In

	RedSync      *redsync.Redsync
	ResultRepo   *repo.Result
	ProgressRepo *repo.PlayerProgress
}

// Worker periodically folds every player's top patch values into an
// append-only progress history. Totals only ever grow, so a snapshot is
// recorded only when it strictly exceeds the latest recorded one.
type Worker struct {
	// count counts batches worker has completed so far
	count int

	// sep describes the idle time in-between per-player calculations
	sep time.Duration

	// interval describes the interval in-between different batches
	interval time.Duration

	// timeout bounds the execution time of a single batch
	timeout time.Duration

	WorkerDeps
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.ProgressWorkerEnabled {
		log.Info().Msg("progress worker is disabled")
		return
	}
	(&Worker{
		sep:        conf.ProgressWorkerSeparation,
		interval:   conf.ProgressWorkerInterval,
		timeout:    conf.ProgressWorkerTimeout,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			if err := w.batch(ctx); err != nil {
				log.Error().Err(err).Int("count", w.count).Msg("progress worker batch failed")
			}

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

func (w *Worker) batch(ctx context.Context) error {
	// only one instance may record snapshots at a time
	mutex := w.RedSync.NewMutex(constant.RedsyncKeyProgressWorker, redsync.WithExpiry(w.timeout))
	if err := mutex.Lock(); err != nil {
		log.Info().Err(err).Msg("progress worker: another instance is running; skipping batch")
		return nil
	}
	defer func() {
		if _, err := mutex.Unlock(); err != nil {
			log.Warn().Err(err).Msg("progress worker: failed to release mutex")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	log.Info().Int("count", w.count).Msg("progress worker batch started")

	playerIds, err := w.ResultRepo.GetPlayerIDs(ctx)
	if err != nil {
		return err
	}

	for _, playerId := range playerIds {
		for _, line := range types.Lines {
			if err := w.record(ctx, playerId, line); err != nil {
				log.Error().Err(err).
					Str("playerId", playerId).
					Str("line", string(line)).
					Msg("progress worker: failed to record snapshot")
			}
		}
		time.Sleep(w.sep)
	}

	log.Info().Int("count", w.count).Msg("progress worker batch finished")
	return nil
}

func (w *Worker) record(ctx context.Context, playerId string, line types.LineCategory) error {
	patches, err := w.ResultRepo.GetTopPatches(ctx, playerId, line, constant.LeaderboardCapacity)
	if err != nil {
		return err
	}
	if len(patches) == 0 {
		return nil
	}
	total := lo.Sum(patches)

	latest, err := w.ProgressRepo.GetLatestProgress(ctx, playerId, line)
	if err != nil && !errors.Is(err, plerr.ErrNotFound) {
		return err
	}
	if latest != nil && total <= latest.Total {
		return nil
	}

	return w.ProgressRepo.CreateProgress(ctx, &model.PlayerProgress{
		PlayerID:   playerId,
		Line:       line,
		Total:      total,
		RecordedAt: time.Now().UTC(),
	})
}

func (w *Worker) Count() int {
	return w.count
}
