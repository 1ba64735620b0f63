package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Health struct {
	DB *bun.DB
}

func NewHealth(db *bun.DB) *Health {
	return &Health{
		DB: db,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}
