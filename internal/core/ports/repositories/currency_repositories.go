package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	// Returns apperrors.ErrNotFound when no such currency exists.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// FindCurrencyByID retrieves a specific currency by its id.
	FindCurrencyByID(ctx context.Context, id string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency and returns the stored row.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// UpdateCurrency changes the name and sign of an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// DeleteCurrency removes a currency that no exchange rate references.
	DeleteCurrency(ctx context.Context, id string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
