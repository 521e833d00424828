package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the standard 500 error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromContext(c).Error("Recovered from panic", slog.String("panic", fmt.Sprint(recovered)))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	})
}
