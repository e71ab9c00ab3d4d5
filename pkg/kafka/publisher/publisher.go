package publisher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"paybox/pkg/logger"
	"paybox/pkg/metric"

	"github.com/segmentio/kafka-go"
)

const (
	_defaultMaxAttempts    = 3
	_defaultBaseRetryDelay = 100 * time.Millisecond
	_defaultMaxRetryDelay  = 2 * time.Second

	_backoffMultiplier = 2

	_eventTypeHeader = "event_type"
	_requestIDHeader = "request_id"
)

// MessageWriter is the subset of *kafka.Writer used here.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes events to a topic, retrying with jittered backoff and
// falling back to a dead letter topic once attempts are exhausted.
type Publisher struct {
	writer     MessageWriter
	deadLetter MessageWriter
	topic      string
	dlqTopic   string
	log        logger.Logger
	metrics    metric.Publisher

	maxAttempts    int
	baseRetryDelay time.Duration
	maxRetryDelay  time.Duration
}

func NewPublisher(
	writer MessageWriter,
	deadLetter MessageWriter,
	topic string,
	dlqTopic string,
	log logger.Logger,
	metrics metric.Publisher,
	opts ...Option,
) (*Publisher, error) {
	p := &Publisher{
		writer:     writer,
		deadLetter: deadLetter,
		topic:      topic,
		dlqTopic:   dlqTopic,
		log:        log,
		metrics:    metrics,

		maxAttempts:    _defaultMaxAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
	}

	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("kafka.publisher.NewPublisher: validation: %w", err)
	}

	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, key []byte, eventType string, value []byte) error {
	const op = "kafka.publisher.Publish"

	msg := kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: _eventTypeHeader, Value: []byte(eventType)},
		},
	}
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: _requestIDHeader, Value: []byte(requestID)})
	}

	var err error
	currentBackoff := p.baseRetryDelay
	attempt := 1
	for ; attempt <= p.maxAttempts; attempt++ {
		if err = p.writer.WriteMessages(ctx, msg); err == nil {
			p.metrics.Published(p.topic, eventType)
			return nil
		}

		p.metrics.PublishFailed(p.topic, "write_failed")
		p.log.LogAttrs(ctx, logger.WarnLevel, "event write failed",
			logger.String("op", op),
			logger.String("topic", p.topic),
			logger.String("event_type", eventType),
			logger.Int("attempt", attempt),
			logger.Err(err),
		)

		if attempt == p.maxAttempts || ctx.Err() != nil {
			break
		}

		jitter := time.Duration(rand.Int64N(int64(currentBackoff * _backoffMultiplier)))
		if jitter > p.maxRetryDelay {
			jitter = p.maxRetryDelay
		}

		select {
		case <-time.After(jitter):
		case <-ctx.Done():
		}
		currentBackoff = min(currentBackoff*_backoffMultiplier, p.maxRetryDelay)
	}

	if dlqErr := p.sendDeadLetter(context.WithoutCancel(ctx), msg, eventType, err, attempt); dlqErr != nil {
		return errors.Join(fmt.Errorf("%s: write event: %w", op, err), dlqErr)
	}
	return fmt.Errorf("%s: event dead lettered after %d attempts: %w", op, attempt, err)
}

func (p *Publisher) sendDeadLetter(
	ctx context.Context,
	original kafka.Message,
	eventType string,
	cause error,
	attempts int,
) error {
	const op = "kafka.publisher.sendDeadLetter"

	envelope := map[string]any{
		"metadata": map[string]any{
			"original_topic": p.topic,
			"event_type":     eventType,
			"attempts":       attempts,
			"error":          cause.Error(),
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
		},
		"payload": json.RawMessage(original.Value),
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		p.log.Errorw("failed to marshal dead letter envelope",
			"op", op,
			"error", err,
			"payload_base64", base64.StdEncoding.EncodeToString(original.Value),
		)
		value = []byte(fmt.Sprintf(`{"error":"marshal_failed","payload_base64":%q}`,
			base64.StdEncoding.EncodeToString(original.Value)))
	}

	if err = p.deadLetter.WriteMessages(ctx, kafka.Message{
		Key:     original.Key,
		Value:   value,
		Headers: original.Headers,
	}); err != nil {
		p.metrics.PublishFailed(p.dlqTopic, "dead_letter_failed")
		p.log.Errorw("failed to write dead letter",
			"op", op,
			"topic", p.dlqTopic,
			"error", err,
		)
		return fmt.Errorf("%s: write: %w", op, err)
	}

	p.metrics.DeadLettered(p.dlqTopic, p.topic, attempts)
	p.log.Warnw("event sent to dead letter topic",
		"op", op,
		"topic", p.dlqTopic,
		"event_type", eventType,
		"attempts", attempts,
	)
	return nil
}

func (p *Publisher) Close() error {
	var errs []error
	if err := p.writer.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := p.deadLetter.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("kafka.publisher.Close: %w", errors.Join(errs...))
	}
	return nil
}
