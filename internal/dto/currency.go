package dto

import (
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// Accepted both as form fields and as a JSON body.
type CreateCurrencyRequest struct {
	Code string `form:"code" json:"code"`
	Name string `form:"name" json:"name"`
	Sign string `form:"sign" json:"sign"`
}

// Normalize trims every field and upper-cases the code.
func (r *CreateCurrencyRequest) Normalize() {
	r.Code = NormalizeCode(r.Code)
	r.Name = strings.TrimSpace(r.Name)
	r.Sign = strings.TrimSpace(r.Sign)
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Sign string `json:"sign"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:   curr.ID,
		Code: curr.Code,
		Name: curr.FullName,
		Sign: curr.Sign,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// NormalizeCode trims a currency code and upper-cases it.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
