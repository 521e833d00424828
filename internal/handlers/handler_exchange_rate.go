package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to stored exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg gin.IRouter, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchangeRates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
	}

	exchangeRate := rg.Group("/exchangeRate")
	{
		exchangeRate.GET("/:pair", h.getExchangeRate)
		exchangeRate.PATCH("/:pair", h.updateExchangeRate)
		exchangeRate.DELETE("/:pair", h.deleteExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Stores the rate of one base currency unit in the target currency
// @Tags exchange rates
// @Accept  x-www-form-urlencoded
// @Accept  json
// @Produce  json
// @Param   baseCurrencyCode formData string true "Base currency code" example(USD)
// @Param   targetCurrencyCode formData string true "Target currency code" example(EUR)
// @Param   rate formData number true "Target units per one base unit" example(0.9123)
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Currency not found"
// @Failure 409 {object} dto.ErrorResponse "Exchange rate already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create exchange rate"
// @Router /exchangeRates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("base", req.BaseCurrencyCode),
		slog.String("target", req.TargetCurrencyCode))

	created, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(created))
}

// listExchangeRates godoc
// @Summary List all exchange rates
// @Description Retrieves every stored exchange rate ordered by base then target code
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list exchange rates"
// @Router /exchangeRates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getExchangeRate godoc
// @Summary Get a stored exchange rate
// @Description Retrieves the stored rate of a pair. Inverse and cross rates are not synthesized here.
// @Tags exchange rates
// @Produce  json
// @Param   pair path string true "Concatenated currency codes" example(USDEUR)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency pair"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve exchange rate"
// @Router /exchangeRate/{pair} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), c.Param("pair"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// updateExchangeRate godoc
// @Summary Update a stored exchange rate
// @Description Replaces the rate of an existing pair
// @Tags exchange rates
// @Accept  x-www-form-urlencoded
// @Accept  json
// @Produce  json
// @Param   pair path string true "Concatenated currency codes" example(USDEUR)
// @Param   rate formData number true "Target units per one base unit" example(0.9123)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update exchange rate"
// @Router /exchangeRate/{pair} [patch]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	pair := c.Param("pair")
	updated, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), pair, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Exchange rate updated",
		slog.String("pair", pair), slog.String("rate", updated.Rate.String()))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(updated))
}

// deleteExchangeRate godoc
// @Summary Delete a stored exchange rate
// @Tags exchange rates
// @Param   pair path string true "Concatenated currency codes" example(USDEUR)
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid currency pair"
// @Failure 404 {object} dto.ErrorResponse "Exchange rate not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete exchange rate"
// @Router /exchangeRate/{pair} [delete]
func (h *exchangeRateHandler) deleteExchangeRate(c *gin.Context) {
	if err := h.exchangeRateService.DeleteExchangeRate(c.Request.Context(), c.Param("pair")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
