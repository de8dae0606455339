package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Ricozl/commerce/internal/auctionerrors"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/jackc/pgx/v5/pgconn"
)

// isTransientConflict reports whether err is a lock or serialization failure
// that is worth retrying.
func isTransientConflict(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// retryOnConflict runs fn and, on a transient conflict, runs it exactly once more.
// A second conflict is reported as ErrTryAgain.
func retryOnConflict(ctx context.Context, op string, fn func() error) error {
	err := fn()
	if !isTransientConflict(err) {
		return err
	}
	utils.WarnContext(ctx, "Transient conflict, retrying", map[string]any{"op": op, "error": err.Error()})

	err = fn()
	if !isTransientConflict(err) {
		return err
	}
	utils.WarnContext(ctx, "Transient conflict on retry", map[string]any{"op": op, "error": err.Error()})
	return fmt.Errorf("%w: %s", auctionerrors.ErrTryAgain, op)
}
