package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validation.Validator {
	return validation.New(validation.NewCodeSet("USD", "EUR", "GBP", "XXX"))
}

func assertInvalid(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidParameter, apperrors.KindOf(err))
	assert.Equal(t, msg, apperrors.MessageOf(err))
}

func TestValidateCurrencyCode(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name string
		code string
		msg  string
	}{
		{name: "valid", code: "USD"},
		{name: "code from injected set", code: "XXX"},
		{name: "too short", code: "US", msg: "Currency code must contain exactly 3 letters"},
		{name: "too long", code: "USDX", msg: "Currency code must contain exactly 3 letters"},
		{name: "digit", code: "U5D", msg: "Currency code must contain only letters"},
		{name: "not in set", code: "QQQ", msg: "Currency code must be in ISO 4217 format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCurrencyCode(tt.code)
			if tt.msg == "" {
				assert.NoError(t, err)
				return
			}
			assertInvalid(t, err, tt.msg)
		})
	}
}

func TestValidateCurrency_FailFastOrder(t *testing.T) {
	v := newValidator()

	assertInvalid(t, v.ValidateCurrency("", "", ""), "Missing parameter - code")
	assertInvalid(t, v.ValidateCurrency("QQ", " ", ""), "Missing parameter - name")
	assertInvalid(t, v.ValidateCurrency("QQ", "Euro", ""), "Missing parameter - sign")
	assertInvalid(t, v.ValidateCurrency("QQ", "Euro", "€"), "Currency code must contain exactly 3 letters")
	assert.NoError(t, v.ValidateCurrency("EUR", "Euro", "€"))
}

func TestValidateExchangeRate(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name         string
		base, target string
		rate         json.Number
		msg          string
	}{
		{name: "missing base", target: "EUR", rate: "1", msg: "Missing parameter - baseCurrencyCode"},
		{name: "missing target", base: "USD", rate: "1", msg: "Missing parameter - targetCurrencyCode"},
		{name: "missing rate", base: "USD", target: "EUR", msg: "Missing parameter - rate"},
		{name: "malformed rate", base: "USD", target: "EUR", rate: "abc", msg: "Parameter rate must be a valid number"},
		{name: "huge exponent rate", base: "USD", target: "EUR", rate: "1e20000000", msg: "Parameter rate must be a valid number"},
		{name: "negative rate", base: "US", target: "EUR", rate: "-0.1", msg: "Invalid parameter - rate must be non-negative"},
		{name: "bad base code", base: "US", target: "EUR", rate: "1", msg: "Currency code must contain exactly 3 letters"},
		{name: "bad target code", base: "USD", target: "QQQ", rate: "1", msg: "Currency code must be in ISO 4217 format"},
		{name: "same currency", base: "USD", target: "USD", rate: "1", msg: "Invalid parameter - base and target currencies must differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateExchangeRate(tt.base, tt.target, tt.rate)
			assertInvalid(t, err, tt.msg)
		})
	}

	t.Run("zero rate is accepted", func(t *testing.T) {
		rate, err := v.ValidateExchangeRate("USD", "EUR", "0")
		require.NoError(t, err)
		assert.True(t, rate.IsZero())
	})
}

func TestValidateRateUpdate(t *testing.T) {
	v := newValidator()

	rate, err := v.ValidateRateUpdate(" 0.9123 ")
	require.NoError(t, err)
	assert.Equal(t, "0.9123", rate.String())

	_, err = v.ValidateRateUpdate("")
	assertInvalid(t, err, "Missing parameter - rate")

	_, err = v.ValidateRateUpdate("9e99999999")
	assertInvalid(t, err, "Parameter rate must be a valid number")
}

func TestValidateExchange_NumberBounds(t *testing.T) {
	v := newValidator()

	for _, amount := range []json.Number{"1e20", "1e-20", "0.00000000000000000001", "1234567890123456789012345678901234567890"} {
		_, err := v.ValidateExchange("USD", "EUR", amount)
		assert.NoErrorf(t, err, "amount %s", amount)
	}
	for _, amount := range []json.Number{"1e21", "1e-21", "12345678901234567890123456789012345678901"} {
		_, err := v.ValidateExchange("USD", "EUR", amount)
		assertInvalid(t, err, "Parameter amount must be a valid number")
	}
}

func TestValidateExchange(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name     string
		from, to string
		amount   json.Number
		msg      string
	}{
		{name: "missing from", to: "EUR", amount: "abc", msg: "Missing parameter - from"},
		{name: "missing to", from: "USD", amount: "1", msg: "Missing parameter - to"},
		{name: "missing amount", from: "USD", to: "EUR", msg: "Missing parameter - amount"},
		{name: "malformed amount", from: "USD", to: "EUR", amount: "1,5", msg: "Parameter amount must be a valid number"},
		{name: "huge exponent", from: "USD", to: "EUR", amount: "1e20000000", msg: "Parameter amount must be a valid number"},
		{name: "tiny exponent", from: "USD", to: "EUR", amount: "1e-20000000", msg: "Parameter amount must be a valid number"},
		{name: "too many digits", from: "USD", to: "EUR", amount: "12345678901234567890.123456789012345678901", msg: "Parameter amount must be a valid number"},
		{name: "negative amount", from: "USD", to: "EUR", amount: "-1", msg: "Invalid parameter - amount must be non-negative"},
		{name: "bad from code", from: "U1D", to: "EUR", amount: "1", msg: "Currency code must contain only letters"},
		{name: "bad to code", from: "USD", to: "QQQ", amount: "1", msg: "Currency code must be in ISO 4217 format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateExchange(tt.from, tt.to, tt.amount)
			assertInvalid(t, err, tt.msg)
		})
	}

	t.Run("same currency is allowed", func(t *testing.T) {
		amount, err := v.ValidateExchange("EUR", "EUR", "10.50")
		require.NoError(t, err)
		assert.Equal(t, "10.5", amount.String())
	})
}
