package domain

import "github.com/shopspring/decimal"

// Conversion is the result of exchanging an amount between two currencies.
type Conversion struct {
	BaseCurrency    Currency
	TargetCurrency  Currency
	Rate            decimal.Decimal
	RateOrigin      RateOrigin
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
}

// NewConversion applies rate to amount. The rate is kept as resolved and the
// converted amount is rounded half-even to AmountScale places.
func NewConversion(rate ExchangeRate, amount decimal.Decimal) Conversion {
	return Conversion{
		BaseCurrency:    rate.BaseCurrency,
		TargetCurrency:  rate.TargetCurrency,
		Rate:            rate.Rate,
		RateOrigin:      rate.Origin,
		Amount:          amount,
		ConvertedAmount: RoundAmount(amount.Mul(rate.Rate)),
	}
}
