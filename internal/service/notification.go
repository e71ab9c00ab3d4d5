package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"paybox/internal/entity"
	"paybox/pkg/logger"
	"paybox/pkg/metric"
	"paybox/pkg/storage/postgres"
	"paybox/pkg/storage/postgres/transaction"

	"github.com/spf13/cast"
)

const _confirmPaymentOperation = "ConfirmPayment"

// NotificationService verifies platform notifications and applies them to orders.
type NotificationService struct {
	keys      PublicKeySource
	orderRepo OrderRepository
	txManager transaction.Manager
	settings  ConfigProvider
	notifier  Notifier
	logger    logger.Logger
	metrics   metric.Payment
	now       func() time.Time
}

func NewNotificationService(
	keys PublicKeySource,
	orderRepo OrderRepository,
	txManager transaction.Manager,
	settings ConfigProvider,
	notifier Notifier,
	logger logger.Logger,
	metrics metric.Payment,
) *NotificationService {
	return &NotificationService{
		keys:      keys,
		orderRepo: orderRepo,
		txManager: txManager,
		settings:  settings,
		notifier:  notifier,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

// Process handles one inbound notification. It never fails: every problem
// becomes an outcome reported to the merchants.
func (ns *NotificationService) Process(ctx context.Context, values url.Values) *entity.NotificationResult {
	const op = "service.NotificationService.Process"
	log := ns.logger.Ctx(ctx)

	log.LogAttrs(ctx, logger.InfoLevel, "paybox platform request received",
		logger.String("op", op),
	)

	notification := entity.NotificationFromLookup(values.Get)
	result := ns.reconcile(ctx, notification)

	log.LogAttrs(ctx, logger.InfoLevel, result.Message,
		logger.String("op", op),
		logger.String("outcome", string(result.Outcome)),
		logger.Int64("order_id", result.OrderID),
		logger.String("order_ref", result.OrderRef),
		logger.String("status", string(result.Status)),
		logger.String("transaction", notification.Transaction),
	)

	ns.metrics.NotificationProcessed(string(result.Outcome))
	ns.notifyMerchant(ctx, result)

	log.LogAttrs(ctx, logger.InfoLevel, "paybox platform request processing terminated",
		logger.String("op", op),
	)

	return result
}

func (ns *NotificationService) reconcile(
	ctx context.Context,
	notification *entity.Notification,
) *entity.NotificationResult {
	log := ns.logger.Ctx(ctx)
	result := &entity.NotificationResult{
		OrderRef: entity.UndefinedOrderRef,
		Status:   entity.PaymentStatusUnknown,
	}

	key, err := ns.keys.PublicKey()
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "public key unavailable", logger.Err(err))
		return result.With(entity.OutcomeKeyUnavailable,
			fmt.Sprintf("Failed to open %s, please check Paybox configuration", ns.keys.Path()))
	}

	if err = VerifyNotification(key, notification); err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "notification signature rejected", logger.Err(err))
		return result.With(entity.OutcomeSignatureInvalid, "Request parameters signature verification failed.")
	}

	result.OrderID = ParseOrderID(notification.Ref)
	result.Status = entity.PaymentStatusNotPaid

	order, err := ns.findOrder(ctx, result.OrderID)
	if err != nil {
		if !errors.Is(err, entity.ErrDataNotFound) {
			log.LogAttrs(ctx, logger.ErrorLevel, "order lookup failed",
				logger.Int64("order_id", result.OrderID),
				logger.Err(err),
			)
		}
		return result.With(entity.OutcomeOrderNotFound, fmt.Sprintf(
			"Order ID %d was not found. Transaction reference is '%s'.", result.OrderID, notification.Ref))
	}
	result.OrderRef = order.Ref

	if notification.ErrorCode != entity.SuccessCode {
		return result.With(entity.OutcomeRejected, fmt.Sprintf(
			"Order cannot be confirmed, Paybox returned error %s: %s",
			notification.ErrorCode, Describe(notification.ErrorCode)))
	}

	result.Status = entity.PaymentStatusPaid
	alreadyPaid := fmt.Sprintf("Order ID %d already paid, message ignored.", order.ID)

	if order.Paid {
		return result.With(entity.OutcomeAlreadyPaid, alreadyPaid)
	}

	confirmed, err := ns.confirmPayment(ctx, order.ID)
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "payment confirmation failed",
			logger.Int64("order_id", order.ID),
			logger.Err(err),
		)
		result.Status = entity.PaymentStatusNotPaid
		return result.With(entity.OutcomeConfirmationFailed, fmt.Sprintf(
			"Order ID %d could not be marked as paid, please check the order status.", order.ID))
	}
	if !confirmed {
		return result.With(entity.OutcomeAlreadyPaid, alreadyPaid)
	}

	ns.notifyCustomer(ctx, order)

	return result.With(entity.OutcomeConfirmed, fmt.Sprintf("Order ID %d is confirmed.", order.ID))
}

func (ns *NotificationService) findOrder(ctx context.Context, id int64) (*entity.Order, error) {
	if id <= 0 {
		return nil, entity.ErrDataNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	return ns.orderRepo.GetByID(ctx, id)
}

// confirmPayment reports false when another delivery already won the transition.
func (ns *NotificationService) confirmPayment(ctx context.Context, orderID int64) (bool, error) {
	var confirmed bool

	err := ns.txManager.ExecuteInTransaction(
		ctx,
		_confirmPaymentOperation,
		func(tx postgres.QueryExecuter) error {
			var err error
			confirmed, err = ns.orderRepo.MarkPaid(ctx, tx, orderID)
			if err != nil {
				return transaction.HandleError(_confirmPaymentOperation, "mark paid", err)
			}
			return nil
		},
	)
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

func (ns *NotificationService) notifyMerchant(ctx context.Context, result *entity.NotificationResult) {
	err := ns.notifier.NotifyMerchant(ctx, &entity.MerchantNotification{
		Type:       entity.EventMerchantPaymentStatus,
		OrderID:    result.OrderID,
		OrderRef:   result.OrderRef,
		Status:     result.Status,
		Message:    result.Message,
		OccurredAt: ns.now(),
	})
	if err != nil {
		ns.logger.Ctx(ctx).LogAttrs(ctx, logger.ErrorLevel, "merchant notification failed",
			logger.Int64("order_id", result.OrderID),
			logger.Err(err),
		)
	}
}

func (ns *NotificationService) notifyCustomer(ctx context.Context, order *entity.Order) {
	log := ns.logger.Ctx(ctx)

	sendConfirmation := cast.ToBool(strings.TrimSpace(ns.settings.GetString(
		ctx,
		entity.SettingSendConfirmation,
		entity.SettingDefaults[entity.SettingSendConfirmation],
	)))
	if !sendConfirmation {
		return
	}

	storeEmail := strings.TrimSpace(ns.settings.GetString(ctx, entity.SettingStoreEmail, ""))
	if storeEmail == "" {
		log.LogAttrs(ctx, logger.WarnLevel, "store email is not configured, confirmation not sent",
			logger.Int64("order_id", order.ID),
		)
		return
	}

	err := ns.notifier.NotifyCustomer(ctx, &entity.CustomerConfirmation{
		Type:          entity.EventCustomerPaymentConfirmed,
		OrderID:       order.ID,
		OrderRef:      order.Ref,
		CustomerEmail: order.CustomerEmail,
		StoreEmail:    storeEmail,
		OccurredAt:    ns.now(),
	})
	if err != nil {
		log.LogAttrs(ctx, logger.ErrorLevel, "customer confirmation failed",
			logger.Int64("order_id", order.ID),
			logger.Err(err),
		)
	}
}

// ParseOrderID reads the leading integer of ref, 0 when there is none.
func ParseOrderID(ref string) int64 {
	ref = strings.TrimLeft(ref, " \t\n\r\v\f")

	end := 0
	if end < len(ref) && (ref[end] == '+' || ref[end] == '-') {
		end++
	}
	for end < len(ref) && ref[end] >= '0' && ref[end] <= '9' {
		end++
	}

	id, err := strconv.ParseInt(ref[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
