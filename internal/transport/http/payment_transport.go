package httpt

import (
	"context"
	"fmt"
	"net/url"

	"paybox/internal/entity"
	"paybox/pkg/logger"
	"paybox/pkg/metric"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=payment_transport.go -destination=mock/payment_transport.go -package=mock_httpt

type (
	RequestBuilder interface {
		Build(ctx context.Context, orderID int64) (*entity.PaymentRequest, error)
	}

	EligibilityChecker interface {
		Check(ctx context.Context, orderID int64, clientIP string) bool
	}

	NotificationProcessor interface {
		Process(ctx context.Context, values url.Values) *entity.NotificationResult
	}

	SettingsReader interface {
		Settings(ctx context.Context) *entity.Settings
		Reload(ctx context.Context) error
	}
)

// Redirects are the storefront pages customers are sent back to.
type Redirects struct {
	OrderPlacedURL string
	OrderFailedURL string
}

type PaymentHandler struct {
	builder       RequestBuilder
	eligibility   EligibilityChecker
	notifications NotificationProcessor
	settings      SettingsReader
	redirects     Redirects
	log           logger.Logger
	metrics       metric.HTTP
	router        *gin.Engine
}

func NewPaymentHandler(
	builder RequestBuilder,
	eligibility EligibilityChecker,
	notifications NotificationProcessor,
	settings SettingsReader,
	redirects Redirects,
	trustedProxies []string,
	log logger.Logger,
	metrics metric.HTTP,
) (*PaymentHandler, error) {
	h := &PaymentHandler{
		builder:       builder,
		eligibility:   eligibility,
		notifications: notifications,
		settings:      settings,
		redirects:     redirects,
		log:           log,
		metrics:       metrics,
	}

	router := gin.New()
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("transport.http.NewPaymentHandler: trusted proxies: %w", err)
	}

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.setupRoutes()

	return h, nil
}

func (h *PaymentHandler) Engine() *gin.Engine {
	return h.router
}
