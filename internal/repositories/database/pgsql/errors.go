package pgsql

import (
	"errors"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// errorMessages are the client facing messages of one store operation.
// Empty messages disable the corresponding translation.
type errorMessages struct {
	notFound string
	exists   string
	inUse    string
	failed   string
}

// translateError turns a pgx error into an apperrors error so that driver
// errors never leave the store.
func translateError(err error, msgs errorMessages) error {
	if errors.Is(err, pgx.ErrNoRows) && msgs.notFound != "" {
		return apperrors.NewAppError(apperrors.KindNotFound, msgs.notFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && msgs.exists != "":
			return apperrors.NewAppError(apperrors.KindEntityExists, msgs.exists, err)
		case pgErr.Code == pgForeignKeyViolation && msgs.inUse != "":
			return apperrors.NewAppError(apperrors.KindEntityInUse, msgs.inUse, err)
		}
	}

	return apperrors.NewDatabaseError(msgs.failed, err)
}
