package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRateByCodes retrieves the stored rate for exactly (base, target).
	// The opposite direction is never consulted. Returns apperrors.ErrNotFound when absent.
	FindExchangeRateByCodes(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error)

	// FindExchangeRateByID retrieves a stored rate by its id.
	FindExchangeRateByID(ctx context.Context, id string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all stored rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new rate between the currencies identified by
	// the codes of rate.BaseCurrency and rate.TargetCurrency.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	// UpdateExchangeRate replaces the rate value of a stored row.
	UpdateExchangeRate(ctx context.Context, id string, rate decimal.Decimal) (*domain.ExchangeRate, error)

	// DeleteExchangeRate removes a stored row.
	DeleteExchangeRate(ctx context.Context, id string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
// This is a facade for clients that need access to all operations
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
