package httpt

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *PaymentHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	paybox := h.router.Group("/paybox")
	{
		paybox.GET("/status", h.getStatusHandler)
		paybox.POST("/settings/reload", h.reloadSettingsHandler)

		paybox.GET("/orders/:order_id/eligibility", h.getEligibilityHandler)
		paybox.POST("/orders/:order_id/payment", h.createPaymentRequestHandler)

		// The platform may call back with either method depending on PBX_RUF1.
		paybox.GET("/callback", h.callbackHandler)
		paybox.POST("/callback", h.callbackHandler)

		paybox.GET("/success", h.successHandler)
		paybox.GET("/rejected", h.rejectedHandler)
		paybox.GET("/cancel", h.cancelHandler)
	}
}
