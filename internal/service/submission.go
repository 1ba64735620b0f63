package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/constant"
	"platinalab.dev/backend/internal/model"
	"platinalab.dev/backend/internal/model/types"
	"platinalab.dev/backend/internal/pkg/keylock"
	"platinalab.dev/backend/internal/pkg/plerr"
	"platinalab.dev/backend/internal/repo"
)

// Submission is the merge engine: it decides whether an incoming decode result
// supersedes the stored best for its (player, pattern) key and forwards
// accepted changes to aggregation within the same transaction.
type Submission struct {
	DB                 *bun.DB
	NatsConn           *nats.Conn
	SongRepo           *repo.Song
	ResultRepo         *repo.Result
	PatternRepo        *repo.Pattern
	AggregationService *Aggregation

	keyLock *keylock.KeyLock
}

func NewSubmission(
	db *bun.DB,
	natsConn *nats.Conn,
	songRepo *repo.Song,
	resultRepo *repo.Result,
	patternRepo *repo.Pattern,
	aggregationService *Aggregation,
) *Submission {
	return &Submission{
		DB:                 db,
		NatsConn:           natsConn,
		SongRepo:           songRepo,
		ResultRepo:         resultRepo,
		PatternRepo:        patternRepo,
		AggregationService: aggregationService,
		keyLock:            keylock.New(),
	}
}

func (s *Submission) Submit(ctx context.Context, req *types.SubmitRequest, submittedAt time.Time) (*model.SubmitOutcome, error) {
	if !req.ClearStatus.Valid() {
		return nil, plerr.ErrInvalidInput.Msg("invalid clear status: %s", req.ClearStatus)
	}
	if req.Patch < constant.PatchScoreMin || req.Patch > constant.PatchScoreMax {
		return nil, plerr.ErrInvalidInput.Msg("patch score out of range: %f", req.Patch)
	}

	pattern, err := s.PatternRepo.GetPatternByID(ctx, req.PatternID)
	if errors.Is(err, plerr.ErrNotFound) {
		return nil, plerr.ErrUnknownPattern.Msg("pattern %d is not in the catalog", req.PatternID)
	} else if err != nil {
		return nil, err
	}
	if pattern.Status != model.PatternStatusAccepted {
		return nil, plerr.ErrUnknownPattern.Msg("pattern %d is not accepted yet", req.PatternID)
	}

	song, err := s.SongRepo.GetSongByID(ctx, pattern.SongID)
	if err != nil {
		return nil, err
	}
	line := song.Line

	// serialize the read-decide-write sequence per (player, pattern): the
	// advisory lock inside the transaction covers racing instances (the key's
	// row may not exist yet, so a row lock cannot), the key lock keeps
	// in-process contenders from queueing on the database
	unlock := s.keyLock.Lock(resultKey(req.PlayerID, req.PatternID))
	defer unlock()

	newResult := &model.Result{
		PlayerID:     req.PlayerID,
		PatternID:    req.PatternID,
		ClearStatus:  req.ClearStatus,
		Patch:        req.Patch,
		Score:        req.Score,
		Judge:        req.Judge,
		SubmittedAt:  submittedAt,
		SourceClient: req.SourceClient,
	}

	var outcome *model.SubmitOutcome
	err = s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := s.ResultRepo.LockKey(ctx, tx, req.PlayerID, req.PatternID); err != nil {
			return err
		}

		// re-resolve the pattern under a share lock: a concurrent catalog
		// removal holds FOR UPDATE on the row, so the write below can never
		// attach to a pattern deleted after the pre-check above
		if _, err := s.PatternRepo.GetPatternForShare(ctx, tx, req.PatternID); err != nil {
			if errors.Is(err, plerr.ErrNotFound) {
				return plerr.ErrUnknownPattern.Msg("pattern %d is not in the catalog", req.PatternID)
			}
			return err
		}

		old, err := s.ResultRepo.GetResultForUpdate(ctx, tx, req.PlayerID, req.PatternID)
		if err != nil && !errors.Is(err, plerr.ErrNotFound) {
			return err
		}

		if !newResult.Supersedes(old) {
			// a known-or-worse score is normal client behavior, not a fault
			outcome = &model.SubmitOutcome{Outcome: model.OutcomeUnchanged, Result: old}
			return nil
		}

		if err := s.ResultRepo.UpsertResult(ctx, tx, newResult); err != nil {
			return err
		}
		if err := s.AggregationService.Apply(ctx, tx, line, old, newResult); err != nil {
			return err
		}

		outcome = &model.SubmitOutcome{Outcome: model.OutcomeAccepted, Result: newResult, Previous: old}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if outcome.Outcome == model.OutcomeAccepted {
		FlushDerivedCaches(req.PlayerID, line)
		s.publishAccepted(line, newResult)
	}

	return outcome, nil
}

// publishAccepted emits the committed result for downstream consumers.
// Best-effort: a broken event bus must never fail a stored submission.
func (s *Submission) publishAccepted(line types.LineCategory, result *model.Result) {
	if s.NatsConn == nil {
		return
	}
	payload, err := json.Marshal(struct {
		PlayerID    string             `json:"playerId"`
		PatternID   int                `json:"patternId"`
		Line        types.LineCategory `json:"line"`
		ClearStatus types.ClearStatus  `json:"clearStatus"`
		Patch       float64            `json:"patch"`
	}{result.PlayerID, result.PatternID, line, result.ClearStatus, result.Patch})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal accepted-result event")
		return
	}
	if err := s.NatsConn.Publish(constant.NatsSubjectResultAccepted, payload); err != nil {
		log.Warn().Err(err).Msg("failed to publish accepted-result event")
	}
}

func resultKey(playerId string, patternId int) string {
	return fmt.Sprintf("%s|%d", playerId, patternId)
}
