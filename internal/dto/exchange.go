package dto

import (
	"encoding/json"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// ExchangeRequest holds the query of a conversion.
type ExchangeRequest struct {
	From   string      `form:"from"`
	To     string      `form:"to"`
	Amount json.Number `form:"amount"`
}

// Normalize trims and upper-cases both codes.
func (r *ExchangeRequest) Normalize() {
	r.From = NormalizeCode(r.From)
	r.To = NormalizeCode(r.To)
}

// ExchangeResponse is the result of a conversion.
type ExchangeResponse struct {
	BaseCurrency    CurrencyResponse `json:"baseCurrency"`
	TargetCurrency  CurrencyResponse `json:"targetCurrency"`
	Rate            Number           `json:"rate" swaggertype:"number"`
	Amount          Number           `json:"amount" swaggertype:"number"`
	ConvertedAmount Number           `json:"convertedAmount" swaggertype:"number"`
}

// ToExchangeResponse converts a domain.Conversion to ExchangeResponse DTO
func ToExchangeResponse(c *domain.Conversion) ExchangeResponse {
	return ExchangeResponse{
		BaseCurrency:    ToCurrencyResponse(&c.BaseCurrency),
		TargetCurrency:  ToCurrencyResponse(&c.TargetCurrency),
		Rate:            RateNumber(c.Rate, c.RateOrigin),
		Amount:          ExactNumber(c.Amount),
		ConvertedAmount: FixedNumber(c.ConvertedAmount, domain.AmountScale),
	}
}
