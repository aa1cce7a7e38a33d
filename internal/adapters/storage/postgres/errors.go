package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shelter-care/internal/domain/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeForeignKeyViolation  = "23503"
)

// mapErr traduce errores del driver a la taxonomía de dominio.
// Los errores que ya tienen Kind de dominio pasan sin cambios.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, errs.ErrStoreTimeout, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return &errs.TxError{Op: op, Err: err}
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, errs.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func notFoundIfNoRows(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NotFound(entity, id)
	}
	return err
}
