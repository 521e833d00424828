package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the stored rate for a pair, direct direction only.
	GetExchangeRate(ctx context.Context, pair string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all stored rates.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate validates and persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)

	// UpdateExchangeRate replaces the rate of a stored pair.
	UpdateExchangeRate(ctx context.Context, pair string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)

	// DeleteExchangeRate removes a stored pair.
	DeleteExchangeRate(ctx context.Context, pair string) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
