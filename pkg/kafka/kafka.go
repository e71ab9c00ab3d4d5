package kafka

import (
	"context"
	"fmt"

	"paybox/internal/config"
	"paybox/pkg/logger"

	"github.com/segmentio/kafka-go"
)

type contextKey string

const kafkaMetadataKey contextKey = "kafka_metadata"

// NewKafkaWriter builds a synchronous writer bound to topic and checks that every broker is reachable.
func NewKafkaWriter(cfg config.Notifier, topic string, log logger.Logger) (*kafka.Writer, error) {
	const op = "kafka.NewKafkaWriter"

	metadata := map[string]string{"topic": topic}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Async:                  false,
		AllowAutoTopicCreation: true,
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		ReadTimeout:            cfg.ReadTimeout,
		Logger: kafka.LoggerFunc(func(msg string, args ...any) {
			ctx := context.WithValue(context.Background(), kafkaMetadataKey, metadata)
			log.LogAttrs(ctx, logger.DebugLevel, "kafka writer info",
				logger.String("topic", topic),
				logger.String("message", fmt.Sprintf(msg, args...)),
			)
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			ctx := context.WithValue(context.Background(), kafkaMetadataKey, metadata)
			log.LogAttrs(ctx, logger.ErrorLevel, "kafka writer error",
				logger.String("topic", topic),
				logger.String("error", fmt.Sprintf(msg, args...)),
			)
		}),
	}

	if err := checkKafkaConnection(cfg.Brokers, log); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return writer, nil
}

func checkKafkaConnection(brokers []string, log logger.Logger) error {
	const op = "kafka.checkKafkaConnection"

	dialer := &kafka.Dialer{}
	for _, broker := range brokers {
		conn, err := dialer.Dial("tcp", broker)
		if err != nil {
			return fmt.Errorf("%s: connect to %s: %w", op, broker, err)
		}

		if err = conn.Close(); err != nil {
			log.Warnw("failed to close connection",
				"operation", op,
				"broker", broker,
				"error", err)
		}
	}
	return nil
}
