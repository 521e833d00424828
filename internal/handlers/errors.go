package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidParameter:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindEntityExists, apperrors.KindEntityInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the error envelope for err and aborts the request.
// Client errors are logged at warn level, everything else at error level.
func respondWithError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := apperrors.KindOf(err)
	status := statusFor(kind)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("kind", kind.String()), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("kind", kind.String()), slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    status,
		Message: apperrors.MessageOf(err),
	})
}

// bindError converts a binding failure into an invalid parameter error.
func bindError(err error) error {
	return apperrors.NewAppError(apperrors.KindInvalidParameter, "Invalid request format", err)
}
