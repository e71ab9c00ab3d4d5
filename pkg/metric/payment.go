package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Payment = (*paymentMetrics)(nil)

type paymentMetrics struct {
	requestsBuilt *prometheus.CounterVec
	requestErrors *prometheus.CounterVec
	notifications *prometheus.CounterVec
	currency      *prometheus.CounterVec
}

func newPaymentMetrics(registry *promRegistry) *paymentMetrics {
	built := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "payment_requests_total",
			Help:      "Total number of signed payment requests built, by platform mode",
		},
		[]string{"mode"},
	)

	requestErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "payment_request_errors_total",
			Help:      "Total number of payment requests that could not be built",
		},
		[]string{"reason"},
	)

	notifications := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "notifications_total",
			Help:      "Total number of platform notifications processed, by outcome",
		},
		[]string{"outcome"},
	)

	currency := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: _namespace,
			Name:      "currency_resolutions_total",
			Help:      "Total number of currency code resolutions, by data source",
		},
		[]string{"source"},
	)

	registry.registry.MustRegister(built, requestErrors, notifications, currency)

	return &paymentMetrics{
		requestsBuilt: built,
		requestErrors: requestErrors,
		notifications: notifications,
		currency:      currency,
	}
}

func (m *paymentMetrics) RequestBuilt(mode string) {
	m.requestsBuilt.WithLabelValues(mode).Add(1)
}

func (m *paymentMetrics) RequestFailed(reason string) {
	m.requestErrors.WithLabelValues(reason).Add(1)
}

func (m *paymentMetrics) NotificationProcessed(outcome string) {
	m.notifications.WithLabelValues(outcome).Add(1)
}

func (m *paymentMetrics) CurrencyResolved(source string) {
	m.currency.WithLabelValues(source).Add(1)
}
