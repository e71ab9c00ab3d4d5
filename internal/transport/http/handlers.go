package httpt

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"paybox/internal/entity"
	"paybox/internal/service"
	"paybox/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
	// Covers the ISO 4217 download on a cold currency lookup.
	_paymentRequestTimeout = 10 * time.Second
	_notificationTimeout   = 5 * time.Second

	_rejectedMessage = "Your payment was rejected."
	_canceledMessage = "Your payment was canceled."
)

func (h *PaymentHandler) getStatusHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	h.writeStatus(c, h.settings.Settings(ctx))
}

func (h *PaymentHandler) reloadSettingsHandler(c *gin.Context) {
	const op = "transport.reloadSettingsHandler"

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	if err := h.settings.Reload(ctx); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	h.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "module settings reloaded")
	h.writeStatus(c, h.settings.Settings(ctx))
}

func (h *PaymentHandler) writeStatus(c *gin.Context, settings *entity.Settings) {
	missing := settings.MissingKeys()
	if missing == nil {
		missing = []string{}
	}

	c.JSON(http.StatusOK, StatusResponse{
		Mode:        settings.Mode,
		Completed:   len(missing) == 0,
		MissingKeys: missing,
		Settings:    settings.Masked(),
	})
}

func (h *PaymentHandler) getEligibilityHandler(c *gin.Context) {
	const op = "transport.getEligibilityHandler"

	orderID, ok := h.orderIDParam(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	c.JSON(http.StatusOK, EligibilityResponse{
		OrderID:  orderID,
		Eligible: h.eligibility.Check(ctx, orderID, c.ClientIP()),
	})
}

func (h *PaymentHandler) createPaymentRequestHandler(c *gin.Context) {
	const op = "transport.createPaymentRequestHandler"

	orderID, ok := h.orderIDParam(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _paymentRequestTimeout)
	defer cancel()

	request, err := h.builder.Build(ctx, orderID)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	h.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "payment request issued",
		logger.Int64("order_id", orderID),
		logger.String("client_ip", c.ClientIP()),
	)

	c.JSON(http.StatusOK, request)
}

// callbackHandler always answers 200 with an empty body, whatever the outcome.
func (h *PaymentHandler) callbackHandler(c *gin.Context) {
	const op = "transport.callbackHandler"
	log := h.log.Ctx(c.Request.Context())

	if err := c.Request.ParseForm(); err != nil {
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "malformed notification parameters",
			logger.String("op", op),
			logger.Err(err),
			logger.String("client_ip", c.ClientIP()),
		)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), _notificationTimeout)
	defer cancel()

	result := h.notifications.Process(ctx, c.Request.Form)

	log.LogAttrs(ctx, logger.InfoLevel, "notification handled",
		logger.String("op", op),
		logger.String("outcome", string(result.Outcome)),
		logger.Int64("order_id", result.OrderID),
		logger.String("client_ip", c.ClientIP()),
	)

	c.Status(http.StatusOK)
}

func (h *PaymentHandler) successHandler(c *gin.Context) {
	h.redirect(c, h.redirects.OrderPlacedURL, "")
}

func (h *PaymentHandler) rejectedHandler(c *gin.Context) {
	h.redirect(c, h.redirects.OrderFailedURL, _rejectedMessage)
}

func (h *PaymentHandler) cancelHandler(c *gin.Context) {
	h.redirect(c, h.redirects.OrderFailedURL, _canceledMessage)
}

func (h *PaymentHandler) redirect(c *gin.Context, target, message string) {
	orderID := service.ParseOrderID(c.Query("ref"))

	location, err := url.Parse(target)
	if err != nil {
		h.handleServiceError(c, err, "transport.redirect")
		return
	}

	query := location.Query()
	query.Set("order_id", strconv.FormatInt(orderID, 10))
	if message != "" {
		query.Set("message", message)
	}
	location.RawQuery = query.Encode()

	c.Redirect(http.StatusFound, location.String())
}

func (h *PaymentHandler) orderIDParam(c *gin.Context, op string) (int64, bool) {
	value := c.Param("order_id")

	orderID, err := strconv.ParseInt(value, 10, 64)
	if err != nil || orderID <= 0 {
		h.handleInvalidOrderID(c, op, value)
		return 0, false
	}
	return orderID, true
}
