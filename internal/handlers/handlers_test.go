package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/handlers"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	usd = domain.Currency{ID: "usd-id", Code: "USD", FullName: "US Dollar", Sign: "$"}
	eur = domain.Currency{ID: "eur-id", Code: "EUR", FullName: "Euro", Sign: "€"}
	jpy = domain.Currency{ID: "jpy-id", Code: "JPY", FullName: "Yen", Sign: "¥"}
)

type HandlersTestSuite struct {
	suite.Suite
	router          *gin.Engine
	currencySvc     *MockCurrencyService
	exchangeRateSvc *MockExchangeRateService
	exchangeSvc     *MockExchangeService
	quotedDecimals  bool
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.quotedDecimals = decimal.MarshalJSONWithoutQuotes
	decimal.MarshalJSONWithoutQuotes = true
}

func (suite *HandlersTestSuite) TearDownSuite() {
	decimal.MarshalJSONWithoutQuotes = suite.quotedDecimals
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.currencySvc = new(MockCurrencyService)
	suite.exchangeRateSvc = new(MockExchangeRateService)
	suite.exchangeSvc = new(MockExchangeService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Currency:     suite.currencySvc,
		ExchangeRate: suite.exchangeRateSvc,
		Exchange:     suite.exchangeSvc,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.currencySvc.AssertExpectations(suite.T())
	suite.exchangeRateSvc.AssertExpectations(suite.T())
	suite.exchangeSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return suite.do(http.MethodPost, target, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (suite *HandlersTestSuite) assertError(w *httptest.ResponseRecorder, status int, message string) {
	suite.Equal(status, w.Code)
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	suite.Equal(dto.ErrorResponse{Code: status, Message: message}, body)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Health and routing ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestUnknownRoute() {
	w := suite.do(http.MethodGet, "/nope", nil, "")
	suite.assertError(w, http.StatusNotFound, "Resource '/nope' not found")
}

// --- Currencies ---

func (suite *HandlersTestSuite) TestListCurrencies() {
	suite.currencySvc.On("ListCurrencies", mock.Anything).Return([]domain.Currency{eur, usd}, nil).Once()

	w := suite.do(http.MethodGet, "/currencies", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[
		{"id":"eur-id","code":"EUR","name":"Euro","sign":"€"},
		{"id":"usd-id","code":"USD","name":"US Dollar","sign":"$"}
	]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListCurrencies_Empty() {
	suite.currencySvc.On("ListCurrencies", mock.Anything).Return([]domain.Currency{}, nil).Once()

	w := suite.do(http.MethodGet, "/currencies", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListCurrencies_DatabaseError() {
	dbErr := apperrors.NewDatabaseError("Failed to read currencies from the database", errors.New("connection refused"))
	suite.currencySvc.On("ListCurrencies", mock.Anything).Return(nil, fmt.Errorf("failed to list currencies in service: %w", dbErr)).Once()

	w := suite.do(http.MethodGet, "/currencies", nil, "")

	suite.assertError(w, http.StatusInternalServerError, "Failed to read currencies from the database")
}

func (suite *HandlersTestSuite) TestCreateCurrency_Form() {
	req := dto.CreateCurrencyRequest{Code: "usd", Name: "US Dollar", Sign: "$"}
	suite.currencySvc.On("CreateCurrency", mock.Anything, req).Return(&usd, nil).Once()

	w := suite.postForm("/currencies", url.Values{"code": {"usd"}, "name": {"US Dollar"}, "sign": {"$"}})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":"usd-id","code":"USD","name":"US Dollar","sign":"$"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateCurrency_JSON() {
	req := dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", Sign: "€"}
	suite.currencySvc.On("CreateCurrency", mock.Anything, req).Return(&eur, nil).Once()

	w := suite.do(http.MethodPost, "/currencies", bytes.NewBufferString(`{"code":"EUR","name":"Euro","sign":"€"}`), "application/json")

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlersTestSuite) TestCreateCurrency_ValidationError() {
	req := dto.CreateCurrencyRequest{Code: "usd", Sign: "$"}
	suite.currencySvc.On("CreateCurrency", mock.Anything, req).Return(nil, apperrors.NewValidationError("Missing parameter - name")).Once()

	w := suite.postForm("/currencies", url.Values{"code": {"usd"}, "sign": {"$"}})

	suite.assertError(w, http.StatusBadRequest, "Missing parameter - name")
}

func (suite *HandlersTestSuite) TestCreateCurrency_Duplicate() {
	req := dto.CreateCurrencyRequest{Code: "USD", Name: "US Dollar", Sign: "$"}
	dup := apperrors.NewDuplicateError("Currency with code 'USD' already exists")
	suite.currencySvc.On("CreateCurrency", mock.Anything, req).Return(nil, fmt.Errorf("failed to create currency in service: %w", dup)).Once()

	w := suite.postForm("/currencies", url.Values{"code": {"USD"}, "name": {"US Dollar"}, "sign": {"$"}})

	suite.assertError(w, http.StatusConflict, "Currency with code 'USD' already exists")
}

func (suite *HandlersTestSuite) TestCreateCurrency_MalformedJSON() {
	w := suite.do(http.MethodPost, "/currencies", bytes.NewBufferString(`{"code":`), "application/json")

	suite.assertError(w, http.StatusBadRequest, "Invalid request format")
}

func (suite *HandlersTestSuite) TestGetCurrency() {
	suite.currencySvc.On("GetCurrencyByCode", mock.Anything, "usd").Return(&usd, nil).Once()

	w := suite.do(http.MethodGet, "/currency/usd", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"id":"usd-id","code":"USD","name":"US Dollar","sign":"$"}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestGetCurrency_NotFound() {
	suite.currencySvc.On("GetCurrencyByCode", mock.Anything, "CHF").
		Return(nil, apperrors.NewNotFoundError("Currency with code 'CHF' not found")).Once()

	w := suite.do(http.MethodGet, "/currency/CHF", nil, "")

	suite.assertError(w, http.StatusNotFound, "Currency with code 'CHF' not found")
}

func (suite *HandlersTestSuite) TestDeleteCurrency() {
	suite.currencySvc.On("DeleteCurrency", mock.Anything, "JPY").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/currency/JPY", nil, "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteCurrency_InUse() {
	suite.currencySvc.On("DeleteCurrency", mock.Anything, "USD").
		Return(apperrors.NewInUseError("Currency with code 'USD' is used by exchange rates")).Once()

	w := suite.do(http.MethodDelete, "/currency/USD", nil, "")

	suite.assertError(w, http.StatusConflict, "Currency with code 'USD' is used by exchange rates")
}

func (suite *HandlersTestSuite) TestUncategorizedError() {
	suite.currencySvc.On("GetCurrencyByCode", mock.Anything, "USD").Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodGet, "/currency/USD", nil, "")

	suite.assertError(w, http.StatusInternalServerError, "Internal server error")
}

// --- Exchange rates ---

func (suite *HandlersTestSuite) TestListExchangeRates() {
	rates := []domain.ExchangeRate{
		{ID: "rate-1", BaseCurrency: usd, TargetCurrency: eur, Rate: dec("0.9123")},
	}
	suite.exchangeRateSvc.On("ListExchangeRates", mock.Anything).Return(rates, nil).Once()

	w := suite.do(http.MethodGet, "/exchangeRates", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{
		"id":"rate-1",
		"baseCurrency":{"id":"usd-id","code":"USD","name":"US Dollar","sign":"$"},
		"targetCurrency":{"id":"eur-id","code":"EUR","name":"Euro","sign":"€"},
		"rate":0.9123
	}]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_Form() {
	req := dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "EUR", Rate: json.Number("0.9123")}
	created := &domain.ExchangeRate{ID: "rate-1", BaseCurrency: usd, TargetCurrency: eur, Rate: dec("0.9123")}
	suite.exchangeRateSvc.On("CreateExchangeRate", mock.Anything, req).Return(created, nil).Once()

	w := suite.postForm("/exchangeRates", url.Values{
		"baseCurrencyCode":   {"USD"},
		"targetCurrencyCode": {"EUR"},
		"rate":               {"0.9123"},
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{
		"id":"rate-1",
		"baseCurrency":{"id":"usd-id","code":"USD","name":"US Dollar","sign":"$"},
		"targetCurrency":{"id":"eur-id","code":"EUR","name":"Euro","sign":"€"},
		"rate":0.9123
	}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_JSONNumber() {
	req := dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "JPY", Rate: json.Number("149.5")}
	created := &domain.ExchangeRate{ID: "rate-2", BaseCurrency: usd, TargetCurrency: jpy, Rate: dec("149.5")}
	suite.exchangeRateSvc.On("CreateExchangeRate", mock.Anything, req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/exchangeRates",
		bytes.NewBufferString(`{"baseCurrencyCode":"USD","targetCurrencyCode":"JPY","rate":149.5}`), "application/json")

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlersTestSuite) TestCreateExchangeRate_CurrencyMissing() {
	req := dto.CreateExchangeRateRequest{BaseCurrencyCode: "USD", TargetCurrencyCode: "CHF", Rate: json.Number("0.88")}
	suite.exchangeRateSvc.On("CreateExchangeRate", mock.Anything, req).
		Return(nil, apperrors.NewNotFoundError("Currency with code 'CHF' not found")).Once()

	w := suite.postForm("/exchangeRates", url.Values{
		"baseCurrencyCode":   {"USD"},
		"targetCurrencyCode": {"CHF"},
		"rate":               {"0.88"},
	})

	suite.assertError(w, http.StatusNotFound, "Currency with code 'CHF' not found")
}

func (suite *HandlersTestSuite) TestGetExchangeRate() {
	rate := &domain.ExchangeRate{ID: "rate-1", BaseCurrency: usd, TargetCurrency: eur, Rate: dec("0.9123")}
	suite.exchangeRateSvc.On("GetExchangeRate", mock.Anything, "USDEUR").Return(rate, nil).Once()

	w := suite.do(http.MethodGet, "/exchangeRate/USDEUR", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("rate-1", body["id"])
	suite.Equal(0.9123, body["rate"])
}

func (suite *HandlersTestSuite) TestGetExchangeRate_BadPair() {
	suite.exchangeRateSvc.On("GetExchangeRate", mock.Anything, "USD").
		Return(nil, apperrors.NewValidationError("Currency pair must contain exactly 6 letters")).Once()

	w := suite.do(http.MethodGet, "/exchangeRate/USD", nil, "")

	suite.assertError(w, http.StatusBadRequest, "Currency pair must contain exactly 6 letters")
}

func (suite *HandlersTestSuite) TestUpdateExchangeRate() {
	req := dto.UpdateExchangeRateRequest{Rate: json.Number("0.95")}
	updated := &domain.ExchangeRate{ID: "rate-1", BaseCurrency: usd, TargetCurrency: eur, Rate: dec("0.95")}
	suite.exchangeRateSvc.On("UpdateExchangeRate", mock.Anything, "USDEUR", req).Return(updated, nil).Once()

	w := suite.do(http.MethodPatch, "/exchangeRate/USDEUR", strings.NewReader("rate=0.95"), "application/x-www-form-urlencoded")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"rate":0.95`)
}

func (suite *HandlersTestSuite) TestUpdateExchangeRate_NotFound() {
	req := dto.UpdateExchangeRateRequest{Rate: json.Number("1.1")}
	suite.exchangeRateSvc.On("UpdateExchangeRate", mock.Anything, "EURGBP", req).
		Return(nil, apperrors.NewNotFoundError("Exchange rate 'EUR' - 'GBP' not found")).Once()

	w := suite.do(http.MethodPatch, "/exchangeRate/EURGBP", bytes.NewBufferString(`{"rate":1.1}`), "application/json")

	suite.assertError(w, http.StatusNotFound, "Exchange rate 'EUR' - 'GBP' not found")
}

func (suite *HandlersTestSuite) TestDeleteExchangeRate() {
	suite.exchangeRateSvc.On("DeleteExchangeRate", mock.Anything, "USDEUR").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/exchangeRate/USDEUR", nil, "")

	suite.Equal(http.StatusNoContent, w.Code)
}

// --- Exchange ---

func (suite *HandlersTestSuite) TestExchange() {
	req := dto.ExchangeRequest{From: "EUR", To: "USD", Amount: json.Number("100")}
	conversion := &domain.Conversion{
		BaseCurrency:    eur,
		TargetCurrency:  usd,
		Rate:            dec("1.096131"),
		Amount:          dec("100"),
		ConvertedAmount: dec("109.61"),
	}
	suite.exchangeSvc.On("Convert", mock.Anything, req).Return(conversion, nil).Once()

	w := suite.do(http.MethodGet, "/exchange?from=EUR&to=USD&amount=100", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{
		"baseCurrency":{"id":"eur-id","code":"EUR","name":"Euro","sign":"€"},
		"targetCurrency":{"id":"usd-id","code":"USD","name":"US Dollar","sign":"$"},
		"rate":1.096131,
		"amount":100,
		"convertedAmount":109.61
	}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestExchange_MissingParameter() {
	req := dto.ExchangeRequest{From: "EUR", Amount: json.Number("10")}
	suite.exchangeSvc.On("Convert", mock.Anything, req).
		Return(nil, apperrors.NewValidationError("Missing parameter - to")).Once()

	w := suite.do(http.MethodGet, "/exchange?from=EUR&amount=10", nil, "")

	suite.assertError(w, http.StatusBadRequest, "Missing parameter - to")
}

func (suite *HandlersTestSuite) TestExchange_NoRoute() {
	req := dto.ExchangeRequest{From: "EUR", To: "JPY", Amount: json.Number("5")}
	routeErr := &apperrors.RouteNotFoundError{BaseCode: "EUR", TargetCode: "JPY"}
	suite.exchangeSvc.On("Convert", mock.Anything, req).Return(nil, fmt.Errorf("failed to resolve rate: %w", routeErr)).Once()

	w := suite.do(http.MethodGet, "/exchange?from=EUR&to=JPY&amount=5", nil, "")

	suite.assertError(w, http.StatusNotFound, "Exchange rate 'EUR' - 'JPY' not found in the database")
}

func (suite *HandlersTestSuite) TestExchange_KeepsFixedScale() {
	req := dto.ExchangeRequest{From: "EUR", To: "GBP", Amount: json.Number("100")}
	conversion := &domain.Conversion{
		BaseCurrency:    eur,
		TargetCurrency:  domain.Currency{ID: "gbp-id", Code: "GBP", FullName: "Pound Sterling", Sign: "£"},
		Rate:            dec("0.5"),
		RateOrigin:      domain.OriginInverse,
		Amount:          dec("100"),
		ConvertedAmount: dec("50"),
	}
	suite.exchangeSvc.On("Convert", mock.Anything, req).Return(conversion, nil).Once()

	w := suite.do(http.MethodGet, "/exchange?from=EUR&to=GBP&amount=100", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, `"rate":0.500000`)
	suite.Contains(body, `"amount":100,`)
	suite.Contains(body, `"convertedAmount":50.00}`)
}

func (suite *HandlersTestSuite) TestGetExchangeRate_KeepsStoredText() {
	rate := &domain.ExchangeRate{ID: "rate-1", BaseCurrency: usd, TargetCurrency: eur, Rate: dec("0.9000")}
	suite.exchangeRateSvc.On("GetExchangeRate", mock.Anything, "USDEUR").Return(rate, nil).Once()

	w := suite.do(http.MethodGet, "/exchangeRate/USDEUR", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"rate":0.9000}`)
}
