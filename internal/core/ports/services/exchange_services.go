package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

// RateResolver finds a usable rate between two validated currency codes,
// synthesizing one from stored rows when no direct row exists.
type RateResolver interface {
	// ResolveRate returns *apperrors.RouteNotFoundError when no strategy applies.
	ResolveRate(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRate, error)
}

// ExchangeSvcFacade converts amounts between currencies.
type ExchangeSvcFacade interface {
	Convert(ctx context.Context, req dto.ExchangeRequest) (*domain.Conversion, error)
}
