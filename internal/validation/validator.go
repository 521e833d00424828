package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const isoTag = "iso4217_code"

// Messages reported for invalid input.
const (
	msgCodeLength   = "Currency code must contain exactly 3 letters"
	msgCodeLetters  = "Currency code must contain only letters"
	msgCodeISO      = "Currency code must be in ISO 4217 format"
	msgSameCurrency = "Invalid parameter - base and target currencies must differ"
)

// Validator runs the fail-fast input checks. Every failure is an
// apperrors.KindInvalidParameter error carrying the reason of the first
// failing check.
type Validator struct {
	validate *validator.Validate
	codes    CodeSet
}

// New creates a Validator backed by the given code set.
func New(codes CodeSet) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or a nil func
	_ = v.RegisterValidation(isoTag, func(fl validator.FieldLevel) bool {
		return codes.Contains(fl.Field().String())
	})
	return &Validator{validate: v, codes: codes}
}

// NewDefault creates a Validator backed by DefaultCodeSet.
func NewDefault() *Validator {
	return New(DefaultCodeSet())
}

// ValidateCurrencyCode checks an already normalized currency code.
func (v *Validator) ValidateCurrencyCode(code string) error {
	checks := []struct {
		tag string
		msg string
	}{
		{"len=3", msgCodeLength},
		{"alpha", msgCodeLetters},
		{isoTag, msgCodeISO},
	}
	for _, c := range checks {
		if err := v.validate.Var(code, c.tag); err != nil {
			return apperrors.NewValidationError(c.msg)
		}
	}
	return nil
}

// ValidateCurrency checks the input of a new currency.
func (v *Validator) ValidateCurrency(code, name, sign string) error {
	if err := requireAll(field{"code", code}, field{"name", name}, field{"sign", sign}); err != nil {
		return err
	}
	return v.ValidateCurrencyCode(code)
}

// ValidateExchangeRate checks the input of a new exchange rate and returns the parsed rate.
func (v *Validator) ValidateExchangeRate(base, target string, rate json.Number) (decimal.Decimal, error) {
	if err := requireAll(field{"baseCurrencyCode", base}, field{"targetCurrencyCode", target}); err != nil {
		return decimal.Decimal{}, err
	}
	r, err := nonNegative("rate", rate)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := v.ValidateCurrencyCode(base); err != nil {
		return decimal.Decimal{}, err
	}
	if err := v.ValidateCurrencyCode(target); err != nil {
		return decimal.Decimal{}, err
	}
	if base == target {
		return decimal.Decimal{}, apperrors.NewValidationError(msgSameCurrency)
	}
	return r, nil
}

// ValidateRateUpdate checks the new rate of an existing pair and returns it parsed.
func (v *Validator) ValidateRateUpdate(rate json.Number) (decimal.Decimal, error) {
	return nonNegative("rate", rate)
}

// ValidateExchange checks a conversion query and returns the parsed amount.
func (v *Validator) ValidateExchange(from, to string, amount json.Number) (decimal.Decimal, error) {
	if err := requireAll(field{"from", from}, field{"to", to}); err != nil {
		return decimal.Decimal{}, err
	}
	a, err := nonNegative("amount", amount)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if err := v.ValidateCurrencyCode(from); err != nil {
		return decimal.Decimal{}, err
	}
	if err := v.ValidateCurrencyCode(to); err != nil {
		return decimal.Decimal{}, err
	}
	return a, nil
}

type field struct {
	name  string
	value string
}

func requireAll(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError("Missing parameter - " + f.name)
		}
	}
	return nil
}

// Bounds on parsed numbers. Rounding rescales to the exponent, so it must stay small.
const (
	maxNumberExponent = 20
	maxNumberDigits   = 40
)

// nonNegative requires raw to be present, numeric, of bounded size and not below zero.
func nonNegative(name string, raw json.Number) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return decimal.Decimal{}, apperrors.NewValidationError("Missing parameter - " + name)
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !withinBounds(d) {
		return decimal.Decimal{}, apperrors.NewValidationError(fmt.Sprintf("Parameter %s must be a valid number", name))
	}
	if d.IsNegative() {
		return decimal.Decimal{}, apperrors.NewValidationError(fmt.Sprintf("Invalid parameter - %s must be non-negative", name))
	}
	return d, nil
}

func withinBounds(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= maxNumberExponent && exp >= -maxNumberExponent && d.NumDigits() <= maxNumberDigits
}
