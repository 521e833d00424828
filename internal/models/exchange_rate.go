package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate mirrors a row of exchange_rates joined with both of its currencies.
type ExchangeRate struct {
	ID             string          `db:"id"`
	BaseCurrency   Currency        // joined on base_currency_id
	TargetCurrency Currency        // joined on target_currency_id
	Rate           decimal.Decimal `db:"rate"`
	AuditFields
}
