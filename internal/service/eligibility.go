package service

import (
	"context"

	"paybox/internal/entity"
	"paybox/pkg/logger"
)

// IsEligible decides whether the payment method may be offered. Every failed
// rule yields false without telling which one.
func IsEligible(order *entity.Order, settings *entity.Settings, clientIP string) bool {
	switch settings.Mode {
	case entity.ModeTest:
		if !ipAllowed(settings.AllowedIPs, clientIP) {
			return false
		}
	case entity.ModeProduction:
	default:
		return false
	}

	amount := order.TotalAmount
	if !amount.IsPositive() {
		return false
	}

	if settings.MinimumAmount.IsPositive() && amount.LessThan(settings.MinimumAmount) {
		return false
	}

	if settings.MaximumAmount.IsPositive() && amount.GreaterThan(settings.MaximumAmount) {
		return false
	}

	return true
}

func ipAllowed(allowed []string, clientIP string) bool {
	for _, ip := range allowed {
		if ip != "" && ip == clientIP {
			return true
		}
	}
	return false
}

type EligibilityChecker struct {
	settings  ConfigProvider
	orderRepo OrderRepository
	logger    logger.Logger
}

func NewEligibilityChecker(
	settings ConfigProvider,
	orderRepo OrderRepository,
	logger logger.Logger,
) *EligibilityChecker {
	return &EligibilityChecker{
		settings:  settings,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Check loads the order and evaluates IsEligible. Lookup failures count as ineligible.
func (ec *EligibilityChecker) Check(ctx context.Context, orderID int64, clientIP string) bool {
	const op = "service.EligibilityChecker.Check"

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	order, err := ec.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		ec.logger.Ctx(ctx).LogAttrs(ctx, logger.WarnLevel, "eligibility check without order",
			logger.String("op", op),
			logger.Int64("order_id", orderID),
			logger.Err(err),
		)
		return false
	}

	eligible := IsEligible(order, loadSettings(ctx, ec.settings), clientIP)

	ec.logger.Ctx(ctx).LogAttrs(ctx, logger.DebugLevel, "eligibility evaluated",
		logger.String("op", op),
		logger.Int64("order_id", orderID),
		logger.String("client_ip", clientIP),
		logger.Bool("eligible", eligible),
	)

	return eligible
}
