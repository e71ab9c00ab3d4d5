package kafkat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"paybox/internal/entity"
	"paybox/internal/service"
	"paybox/pkg/logger"
)

var _ service.Notifier = (*Notifier)(nil)

type EventPublisher interface {
	Publish(ctx context.Context, key []byte, eventType string, value []byte) error
}

// Notifier publishes payment events for the mail sink. Events are keyed by
// order id so every event of one order lands on the same partition.
type Notifier struct {
	publisher EventPublisher
	log       logger.Logger
}

func NewNotifier(publisher EventPublisher, log logger.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		log:       log,
	}
}

func (n *Notifier) NotifyMerchant(ctx context.Context, notification *entity.MerchantNotification) error {
	return n.publish(ctx, notification.OrderID, notification.Type, notification)
}

func (n *Notifier) NotifyCustomer(ctx context.Context, confirmation *entity.CustomerConfirmation) error {
	return n.publish(ctx, confirmation.OrderID, confirmation.Type, confirmation)
}

func (n *Notifier) publish(ctx context.Context, orderID int64, eventType entity.EventType, event any) error {
	const op = "transport.kafka.notifier.publish"

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: marshal %s: %w", op, eventType, err)
	}

	key := []byte(strconv.FormatInt(orderID, 10))
	if err = n.publisher.Publish(ctx, key, string(eventType), value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n.log.LogAttrs(ctx, logger.DebugLevel, "payment event published",
		logger.String("op", op),
		logger.String("event_type", string(eventType)),
		logger.Int64("order_id", orderID),
	)

	return nil
}
