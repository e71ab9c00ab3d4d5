package httpt

import (
	"context"
	"errors"
	"net/http"

	"paybox/internal/entity"
	"paybox/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *PaymentHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
		logger.Err(err),
		logger.String("remote_addr", c.ClientIP()),
		logger.String("user_agent", c.Request.UserAgent()),
	)

	switch {
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "order not found",
			logger.String("order_id", c.Param("order_id")),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
	case errors.Is(err, entity.ErrCurrencyResolution):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Order currency is not supported"})
	case errors.Is(err, entity.ErrConfiguration), errors.Is(err, entity.ErrHashAlgorithmUnavailable):
		// Details stay in the logs, customers only learn that payment is unavailable.
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Payment is temporarily unavailable"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "Request timed out"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "internal server error",
			logger.Err(err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal service error"})
	}
}

func (h *PaymentHandler) handleInvalidOrderID(c *gin.Context, op, value string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid order ID format",
		logger.String("op", op),
		logger.String("value", value),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid order ID format"})
}
