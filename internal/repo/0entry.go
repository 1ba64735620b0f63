package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"platinalab.dev/backend/internal/pkg/plerr"
)

// wrapNoRows normalizes the driver's no-rows error into the domain NotFound
// sentinel for queries built outside of selector.S.
func wrapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return plerr.ErrNotFound
	}
	return err
}

// advisoryKey namespaces a transaction-scoped advisory lock key so locks
// guarding different kinds of state can never contend on the same name.
func advisoryKey(namespace, key string) string {
	return namespace + ":" + key
}

// lockAdvisory takes a transaction-scoped advisory lock on key, released
// automatically at commit or rollback. Row locks cannot cover state whose row
// does not exist yet; these locks serialize writers on the logical key instead.
func lockAdvisory(ctx context.Context, tx bun.Tx, key string) error {
	_, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext(?))", key)
	return err
}
