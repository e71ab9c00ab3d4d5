package metric

import (
	"net/http"
	"time"
)

// Every collector is registered under this namespace.
const _namespace = "paybox"

type (
	Factory interface {
		HTTP() HTTP
		Transaction() Transaction
		Cache() Cache
		Publisher() Publisher
		Payment() Payment
		Handler() http.Handler
	}

	HTTP interface {
		Request(method, path string, status int, duration time.Duration)
		SlowRequest(method, path string, status int, duration time.Duration)
	}

	Transaction interface {
		ObserveDuration(operation string, duration time.Duration)
		IncrementRetries(operation string)
		IncrementFailures(operation string)
	}

	Cache interface {
		Hit(cacheType string)
		Miss(cacheType string)
		Eviction(cacheType string, reason string)
		Size(cacheType string, size int)
	}

	Publisher interface {
		Published(topic string, eventType string)
		PublishFailed(topic string, reason string)
		DeadLettered(topic string, originalTopic string, attempts int)
	}

	Payment interface {
		RequestBuilt(mode string)
		RequestFailed(reason string)
		NotificationProcessed(outcome string)
		CurrencyResolved(source string)
	}
)
