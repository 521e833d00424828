package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeHandler serves currency conversions.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

func registerExchangeRoutes(rg gin.IRouter, exchangeService portssvc.ExchangeSvcFacade) {
	h := newExchangeHandler(exchangeService)
	rg.GET("/exchange", h.exchange)
}

// exchange godoc
// @Summary Convert an amount between currencies
// @Description Uses the direct rate, else the inverse of the opposite rate, else a cross rate through USD.
// @Description The converted amount is rounded to two decimals, half to even.
// @Tags exchange
// @Produce  json
// @Param   from query string true "Base currency code" example(EUR)
// @Param   to query string true "Target currency code" example(USD)
// @Param   amount query number true "Amount in the base currency" example(100)
// @Success 200 {object} dto.ExchangeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "No exchange route between the currencies"
// @Failure 500 {object} dto.ErrorResponse "Failed to convert"
// @Router /exchange [get]
func (h *exchangeHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	conversion, err := h.exchangeService.Convert(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Converted amount",
		slog.String("from", conversion.BaseCurrency.Code),
		slog.String("to", conversion.TargetCurrency.Code),
		slog.String("rate", conversion.Rate.String()))
	c.JSON(http.StatusOK, dto.ToExchangeResponse(conversion))
}
