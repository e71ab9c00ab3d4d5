package httpt

import (
	"time"

	"github.com/gin-gonic/gin"
)

const _slowRequestThreshold = 200 * time.Millisecond

// requestIDMiddleware reuses an upstream X-Request-ID when present.
func (h *PaymentHandler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = h.log.GenerateRequestID()
		}
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (h *PaymentHandler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		h.log.LogRequest(c.Request.Context(), method, c.Request.URL.Path, statusCode, latency)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > _slowRequestThreshold {
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}
