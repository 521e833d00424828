package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg gin.IRouter, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
	}

	currency := rg.Group("/currency")
	{
		currency.GET("/:code", h.getCurrencyByCode)
		currency.DELETE("/:code", h.deleteCurrency)
	}
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new currency. The code must be a three letter ISO 4217 code.
// @Tags currencies
// @Accept  x-www-form-urlencoded
// @Accept  json
// @Produce  json
// @Param   code formData string true "ISO 4217 code" example(USD)
// @Param   name formData string true "Full name" example(US Dollar)
// @Param   sign formData string true "Sign" example($)
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Currency code already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create currency"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	logger.Info("Received request to create currency", slog.String("currency_code", req.Code))

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Currency created successfully", slog.String("currency_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(created))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve currency"
// @Router /currency/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves a list of all available currencies ordered by code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Debug("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Removes a currency that no exchange rate references
// @Tags currencies
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 409 {object} dto.ErrorResponse "Currency is referenced by exchange rates"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete currency"
// @Router /currency/{code} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	code := c.Param("code")
	if err := h.currencyService.DeleteCurrency(c.Request.Context(), code); err != nil {
		respondWithError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency deleted", slog.String("currency_code", code))
	c.Status(http.StatusNoContent)
}
