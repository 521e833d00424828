package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `id, code, full_name, sign, created_at, last_updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(&c.ID, &c.Code, &c.FullName, &c.Sign, &c.CreatedAt, &c.LastUpdatedAt)
	return c, err
}

// SaveCurrency inserts a new currency. A duplicate code is reported as EntityExists.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (id, code, full_name, sign, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + currencyColumns + `;
	`
	saved, err := scanCurrency(r.Pool.QueryRow(ctx, query,
		modelCurr.ID,
		modelCurr.Code,
		modelCurr.FullName,
		modelCurr.Sign,
		modelCurr.CreatedAt,
		modelCurr.LastUpdatedAt,
	))
	if err != nil {
		return nil, translateError(err, errorMessages{
			exists: fmt.Sprintf("Currency with code '%s' already exists", modelCurr.Code),
			failed: fmt.Sprintf("Failed to save currency with code '%s' to the database", modelCurr.Code),
		})
	}

	domainCurr := mapping.ToDomainCurrency(saved)
	return &domainCurr, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE code = $1;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		return nil, translateError(err, errorMessages{
			notFound: fmt.Sprintf("Currency with code '%s' not found", code),
			failed:   fmt.Sprintf("Failed to read currency with code '%s' from the database", code),
		})
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, errorMessages{
			notFound: fmt.Sprintf("Currency with id '%s' not found", id),
			failed:   fmt.Sprintf("Failed to read currency with id '%s' from the database", id),
		})
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	failed := errorMessages{failed: "Failed to read currencies from the database"}

	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err, failed)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, translateError(err, failed)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// UpdateCurrency changes the name and sign of a currency. The code is immutable.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currencies
		SET full_name = $2, sign = $3, last_updated_at = $4
		WHERE id = $1
		RETURNING ` + currencyColumns + `;
	`
	updated, err := scanCurrency(r.Pool.QueryRow(ctx, query,
		modelCurr.ID,
		modelCurr.FullName,
		modelCurr.Sign,
		modelCurr.LastUpdatedAt,
	))
	if err != nil {
		return nil, translateError(err, errorMessages{
			notFound: fmt.Sprintf("Currency with id '%s' not found", modelCurr.ID),
			failed:   fmt.Sprintf("Failed to update currency with id '%s' in the database", modelCurr.ID),
		})
	}

	domainCurr := mapping.ToDomainCurrency(updated)
	return &domainCurr, nil
}

// DeleteCurrency removes a currency. Currencies referenced by exchange rates
// are reported as EntityInUse.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE id = $1;`, id)
	if err != nil {
		return translateError(err, errorMessages{
			inUse:  fmt.Sprintf("Currency with id '%s' is still used by exchange rates", id),
			failed: fmt.Sprintf("Failed to delete currency with id '%s' from the database", id),
		})
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("Currency with id '%s' not found", id))
	}
	return nil
}
