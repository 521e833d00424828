package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/validation"
)

type exchangeService struct {
	BaseService
	resolver  portssvc.RateResolver
	validator *validation.Validator
}

// NewExchangeService creates the conversion service on top of a rate resolver.
func NewExchangeService(resolver portssvc.RateResolver, validator *validation.Validator) portssvc.ExchangeSvcFacade {
	return &exchangeService{resolver: resolver, validator: validator}
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

// Convert validates the query, resolves a rate and applies it to the amount.
func (s *exchangeService) Convert(ctx context.Context, req dto.ExchangeRequest) (*domain.Conversion, error) {
	req.Normalize()
	amount, err := s.validator.ValidateExchange(req.From, req.To, req.Amount)
	if err != nil {
		return nil, err
	}

	rate, err := s.resolver.ResolveRate(ctx, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s to %s: %w", req.From, req.To, err)
	}

	conversion := domain.NewConversion(*rate, amount)
	return &conversion, nil
}
