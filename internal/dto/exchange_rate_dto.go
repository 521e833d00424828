package dto

import (
	"encoding/json"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
// Rate is kept raw so that a malformed number is reported by validation.
type CreateExchangeRateRequest struct {
	BaseCurrencyCode   string      `form:"baseCurrencyCode" json:"baseCurrencyCode"`
	TargetCurrencyCode string      `form:"targetCurrencyCode" json:"targetCurrencyCode"`
	Rate               json.Number `form:"rate" json:"rate" swaggertype:"string" example:"0.9123"`
}

// Normalize trims and upper-cases both codes.
func (r *CreateExchangeRateRequest) Normalize() {
	r.BaseCurrencyCode = NormalizeCode(r.BaseCurrencyCode)
	r.TargetCurrencyCode = NormalizeCode(r.TargetCurrencyCode)
}

// UpdateExchangeRateRequest carries the new rate of an existing pair.
type UpdateExchangeRateRequest struct {
	Rate json.Number `form:"rate" json:"rate" swaggertype:"string" example:"0.9123"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID             string           `json:"id,omitempty"`
	BaseCurrency   CurrencyResponse `json:"baseCurrency"`
	TargetCurrency CurrencyResponse `json:"targetCurrency"`
	Rate           Number           `json:"rate" swaggertype:"number"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ID,
		BaseCurrency:   ToCurrencyResponse(&rate.BaseCurrency),
		TargetCurrency: ToCurrencyResponse(&rate.TargetCurrency),
		Rate:           RateNumber(rate.Rate, rate.Origin),
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
