package domain

import (
	"github.com/shopspring/decimal"
)

const (
	// WorkingPrecision is the number of significant digits kept by intermediate divisions.
	WorkingPrecision = 16
	// RateScale is the number of decimal places of a synthesized rate.
	RateScale = 6
	// AmountScale is the number of decimal places of a converted amount.
	AmountScale = 2
)

// msd returns the decimal exponent of the most significant digit of d.
func msd(d decimal.Decimal) int32 {
	return d.Exponent() + int32(d.NumDigits()) - 1
}

// DivideSignificant returns a/b rounded half-even to the given number of
// significant digits. b must not be zero.
func DivideSignificant(a, b decimal.Decimal, digits int32) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	neg := a.Sign()*b.Sign() < 0
	a, b = a.Abs(), b.Abs()

	m := msd(a) - msd(b)
	qmsd := m
	if a.LessThan(b.Shift(m)) {
		qmsd = m - 1
	}
	places := digits - 1 - qmsd

	q, r := a.QuoRem(b, places)
	cmp := r.Mul(decimal.NewFromInt(2)).Cmp(b.Shift(-places))
	if cmp > 0 || (cmp == 0 && q.Shift(places).BigInt().Bit(0) == 1) {
		q = q.Add(decimal.New(1, -places))
	}
	if neg {
		q = q.Neg()
	}
	return q
}

// RoundRate rounds a rate half-even to RateScale places.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(RateScale)
}

// RoundAmount rounds an amount half-even to AmountScale places.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(AmountScale)
}

// SynthesizeRate computes numerator/denominator the way every derived rate is
// computed: first to WorkingPrecision significant digits, then to RateScale places.
func SynthesizeRate(numerator, denominator decimal.Decimal) decimal.Decimal {
	return RoundRate(DivideSignificant(numerator, denominator, WorkingPrecision))
}

// InverseRate returns 1/rate.
func InverseRate(rate decimal.Decimal) decimal.Decimal {
	return SynthesizeRate(decimal.NewFromInt(1), rate)
}

// CrossRate returns the base->target rate given pivot->base and pivot->target.
func CrossRate(pivotToBase, pivotToTarget decimal.Decimal) decimal.Decimal {
	return SynthesizeRate(pivotToTarget, pivotToBase)
}
