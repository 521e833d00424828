package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PivotCurrencyCode is the reserve currency used for cross rates.
const PivotCurrencyCode = "USD"

// RateOrigin tells where an ExchangeRate came from.
type RateOrigin int

const (
	// OriginPersisted marks a rate row read from the store.
	OriginPersisted RateOrigin = iota
	// OriginInverse marks a rate derived by reciprocating the opposite row.
	OriginInverse
	// OriginCross marks a rate derived through the pivot currency.
	OriginCross
)

func (o RateOrigin) String() string {
	switch o {
	case OriginPersisted:
		return "persisted"
	case OriginInverse:
		return "inverse"
	case OriginCross:
		return "cross"
	default:
		return fmt.Sprintf("RateOrigin(%d)", int(o))
	}
}

// ExchangeRate is the number of target units per one base unit.
// Synthesized rates (inverse, cross) have an empty ID and are never persisted.
type ExchangeRate struct {
	ID             string          `json:"id,omitempty"`
	BaseCurrency   Currency        `json:"baseCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	Origin         RateOrigin      `json:"-"`
	AuditFields
}

// NewSyntheticRate builds a rate that exists only for the current request.
func NewSyntheticRate(base, target Currency, rate decimal.Decimal, origin RateOrigin) *ExchangeRate {
	return &ExchangeRate{
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           rate,
		Origin:         origin,
	}
}

// IsPersisted reports whether the rate corresponds to a stored row.
func (r ExchangeRate) IsPersisted() bool {
	return r.Origin == OriginPersisted && r.ID != ""
}

// Pair returns the currency pair of the rate.
func (r ExchangeRate) Pair() CurrencyPair {
	return CurrencyPair{Base: r.BaseCurrency.Code, Target: r.TargetCurrency.Code}
}

// CurrencyPair is an ordered (base, target) pair of currency codes.
type CurrencyPair struct {
	Base   string
	Target string
}

// Reversed returns the pair in the opposite direction.
func (p CurrencyPair) Reversed() CurrencyPair {
	return CurrencyPair{Base: p.Target, Target: p.Base}
}

func (p CurrencyPair) String() string {
	return p.Base + p.Target
}

// ParseCurrencyPair splits a concatenated pair such as "USDEUR".
// Codes are upper-cased; their ISO validity is checked elsewhere.
func ParseCurrencyPair(s string) (CurrencyPair, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 6 {
		return CurrencyPair{}, fmt.Errorf("currency pair must contain exactly 6 letters, got %q", s)
	}
	return CurrencyPair{Base: s[:3], Target: s[3:]}, nil
}
