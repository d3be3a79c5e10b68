package aggregate

import (
	"context"
	"errors"
	"strings"

	"recipe-service/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const messageStorageFailure = "storage failure"

// MapError classifies storage and driver failures into the recipe error kinds.
// Errors that already carry a kind pass through untouched.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var known *domain.Error
	if errors.As(err, &known) {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NewError(domain.CodeNotFound, op, domain.ErrRecipeNotFound.Error(), err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return conflict(op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.NewError(domain.CodeStorage, op, err.Error(), err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch {
		case strings.HasPrefix(code, "23"): // integrity_constraint_violation class
			return conflict(op, err)
		case code == "40001", code == "40P01": // serialization_failure, deadlock_detected
			return conflict(op, err)
		}
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrConstraint, sqlite3.ErrBusy, sqlite3.ErrLocked:
			return conflict(op, err)
		}
	}

	return domain.NewError(domain.CodeStorage, op, messageStorageFailure, err)
}

func conflict(op string, err error) error {
	return domain.NewError(domain.CodeConflict, op, domain.MessageRecipeConflict, err)
}
