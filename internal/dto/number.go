package dto

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Number is a decimal written to JSON with a fixed count of fractional digits,
// trailing zeros included.
type Number struct {
	Value  decimal.Decimal
	Places int32
}

// FixedNumber renders d with exactly places fractional digits.
func FixedNumber(d decimal.Decimal, places int32) Number {
	return Number{Value: d, Places: places}
}

// ExactNumber renders d with the fractional digits it was parsed or scanned with.
func ExactNumber(d decimal.Decimal) Number {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return Number{Value: d, Places: places}
}

// RateNumber renders a rate: synthesized rates always carry domain.RateScale
// places, stored rates keep their stored text.
func RateNumber(rate decimal.Decimal, origin domain.RateOrigin) Number {
	if origin == domain.OriginPersisted {
		return ExactNumber(rate)
	}
	return FixedNumber(rate, domain.RateScale)
}

func (n Number) String() string {
	return n.Value.StringFixed(n.Places)
}

// MarshalJSON follows decimal.MarshalJSONWithoutQuotes like decimal.Decimal does.
func (n Number) MarshalJSON() ([]byte, error) {
	s := n.String()
	if decimal.MarshalJSONWithoutQuotes {
		return []byte(s), nil
	}
	return []byte(`"` + s + `"`), nil
}
