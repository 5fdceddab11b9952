package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/talenthub/internal/domain"
)

const (
	uniqueViolation = "23505"
	// Raised until the migrations have run.
	undefinedTable = "42P01"
)

// classify maps driver errors onto the domain sentinels. Anything that means
// the database could not be reached, or has no schema yet, becomes
// ErrStoreUnavailable.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %v: %w", op, err, domain.ErrConflict)
		case undefinedTable:
			return fmt.Errorf("%s: schema not migrated: %v: %w", op, err, domain.ErrStoreUnavailable)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) || errors.As(err, &netErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %v: %w", op, err, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
