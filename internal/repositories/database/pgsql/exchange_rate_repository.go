package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// selectExchangeRates reads rates joined with snapshots of both currencies.
const selectExchangeRates = `
	SELECT er.id, er.rate, er.created_at, er.last_updated_at,
		b.id, b.code, b.full_name, b.sign, b.created_at, b.last_updated_at,
		t.id, t.code, t.full_name, t.sign, t.created_at, t.last_updated_at
	FROM exchange_rates er
	JOIN currencies b ON b.id = er.base_currency_id
	JOIN currencies t ON t.id = er.target_currency_id
`

// PgxExchangeRateRepository implements the ExchangeRateRepositoryFacade interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var m models.ExchangeRate
	b, t := &m.BaseCurrency, &m.TargetCurrency
	err := row.Scan(
		&m.ID, &m.Rate, &m.CreatedAt, &m.LastUpdatedAt,
		&b.ID, &b.Code, &b.FullName, &b.Sign, &b.CreatedAt, &b.LastUpdatedAt,
		&t.ID, &t.Code, &t.FullName, &t.Sign, &t.CreatedAt, &t.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxExchangeRateRepository) findOne(ctx context.Context, q querier, where string, msgs errorMessages, args ...any) (*domain.ExchangeRate, error) {
	modelRate, err := scanExchangeRate(q.QueryRow(ctx, selectExchangeRates+where, args...))
	if err != nil {
		return nil, translateError(err, msgs)
	}
	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// FindExchangeRateByCodes retrieves the rate stored for exactly (base, target).
func (r *PgxExchangeRateRepository) FindExchangeRateByCodes(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error) {
	return r.findOne(ctx, r.Pool, `WHERE b.code = $1 AND t.code = $2;`, errorMessages{
		notFound: fmt.Sprintf("Exchange rate '%s' - '%s' not found", baseCode, targetCode),
		failed:   fmt.Sprintf("Failed to read exchange rate '%s' to '%s' from the database", baseCode, targetCode),
	}, baseCode, targetCode)
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, id string) (*domain.ExchangeRate, error) {
	return r.findOne(ctx, r.Pool, `WHERE er.id = $1;`, errorMessages{
		notFound: fmt.Sprintf("Exchange rate with id '%s' not found", id),
		failed:   fmt.Sprintf("Failed to read exchange rate with id '%s' from the database", id),
	}, id)
}

// ListExchangeRates retrieves every stored rate ordered by base and target code.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	failed := errorMessages{failed: "Failed to read exchange rates from the database"}

	rows, err := r.Pool.Query(ctx, selectExchangeRates+`ORDER BY b.code, t.code;`)
	if err != nil {
		return nil, translateError(err, failed)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, translateError(err, failed)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}

// SaveExchangeRate resolves both currencies by code and inserts the rate in a
// single transaction. The returned rate carries the stored currency snapshots.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	modelRate := mapping.ToModelExchangeRate(rate)
	baseCode, targetCode := modelRate.BaseCurrency.Code, modelRate.TargetCurrency.Code
	failed := fmt.Sprintf("Failed to save exchange rate '%s' to '%s' to the database", baseCode, targetCode)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	baseID, err := currencyIDByCode(ctx, tx, baseCode, failed)
	if err != nil {
		return nil, err
	}
	targetID, err := currencyIDByCode(ctx, tx, targetCode, failed)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO exchange_rates (id, base_currency_id, target_currency_id, rate, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, modelRate.ID, baseID, targetID, modelRate.Rate, modelRate.CreatedAt, modelRate.LastUpdatedAt)
	if err != nil {
		return nil, translateError(err, errorMessages{
			exists: fmt.Sprintf("Exchange rate '%s' to '%s' already exists", baseCode, targetCode),
			failed: failed,
		})
	}

	saved, err := r.findOne(ctx, tx, `WHERE er.id = $1;`, errorMessages{failed: failed}, modelRate.ID)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return saved, nil
}

func currencyIDByCode(ctx context.Context, q querier, code, failed string) (string, error) {
	var id string
	err := q.QueryRow(ctx, `SELECT id FROM currencies WHERE code = $1;`, code).Scan(&id)
	if err != nil {
		return "", translateError(err, errorMessages{
			notFound: fmt.Sprintf("Currency with code '%s' not found", code),
			failed:   failed,
		})
	}
	return id, nil
}

// UpdateExchangeRate replaces the rate of a stored row and returns the row.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, id string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	query := `
		WITH er AS (
			UPDATE exchange_rates
			SET rate = $2, last_updated_at = $3
			WHERE id = $1
			RETURNING id, base_currency_id, target_currency_id, rate, created_at, last_updated_at
		)
		SELECT er.id, er.rate, er.created_at, er.last_updated_at,
			b.id, b.code, b.full_name, b.sign, b.created_at, b.last_updated_at,
			t.id, t.code, t.full_name, t.sign, t.created_at, t.last_updated_at
		FROM er
		JOIN currencies b ON b.id = er.base_currency_id
		JOIN currencies t ON t.id = er.target_currency_id;
	`
	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, id, rate, time.Now().UTC()))
	if err != nil {
		return nil, translateError(err, errorMessages{
			notFound: fmt.Sprintf("Exchange rate with id '%s' not found", id),
			failed:   fmt.Sprintf("Failed to update exchange rate with id '%s' in the database", id),
		})
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// DeleteExchangeRate removes a stored row.
func (r *PgxExchangeRateRepository) DeleteExchangeRate(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM exchange_rates WHERE id = $1;`, id)
	if err != nil {
		return translateError(err, errorMessages{
			failed: fmt.Sprintf("Failed to delete exchange rate with id '%s' from the database", id),
		})
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("Exchange rate with id '%s' not found", id))
	}
	return nil
}
