package logger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"

	_httpStatusClassDiv = 100
)

// RequestIDFromContext lets components outside the logger, such as event
// publishers, carry the request id further.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func (l *ZapLogger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func (l *ZapLogger) GetRequestID(ctx context.Context) string {
	return RequestIDFromContext(ctx)
}

func (l *ZapLogger) NewContextLogger(ctx context.Context) *zap.Logger {
	requestID := RequestIDFromContext(ctx)
	if requestID == "" || requestID == l.boundRequestID {
		return l.logger
	}
	return l.logger.With(zap.String("request_id", requestID))
}

func (l *ZapLogger) LogRequest(
	ctx context.Context,
	method, path string,
	status int,
	duration time.Duration,
) {
	log := l.NewContextLogger(ctx)

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", duration),
		zap.Int("status_class", status/_httpStatusClassDiv),
	}

	switch {
	case status >= 500:
		log.Error("request", fields...)
	case status >= 400:
		log.Warn("request", fields...)
	default:
		log.Info("request", fields...)
	}
}

func (l *ZapLogger) GenerateRequestID() string {
	return uuid.New().String()
}
