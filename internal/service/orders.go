package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paybox/internal/entity"
	"paybox/pkg/logger"

	"golang.org/x/sync/errgroup"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
)

// OrderLoader assembles an order with its lines and invoice address.
type OrderLoader struct {
	orderRepo   OrderRepository
	itemRepo    ItemRepository
	addressRepo AddressRepository
	logger      logger.Logger
}

func NewOrderLoader(
	orderRepo OrderRepository,
	itemRepo ItemRepository,
	addressRepo AddressRepository,
	logger logger.Logger,
) *OrderLoader {
	return &OrderLoader{
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

func (ol *OrderLoader) Load(ctx context.Context, id int64) (*entity.Order, error) {
	const op = "service.OrderLoader.Load"

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	order, err := ol.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: get order: %w", op, err)
	}

	items, billing, err := ol.fetchOrderComponents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if billing == nil {
		ol.logger.LogAttrs(ctx, logger.WarnLevel, "order has no invoice address",
			logger.String("op", op),
			logger.Int64("order_id", id),
		)
	}

	order.Items = items
	order.Billing = billing

	return order, nil
}

func (ol *OrderLoader) fetchOrderComponents(
	ctx context.Context,
	orderID int64,
) ([]*entity.OrderItem, *entity.Address, error) {
	var items []*entity.OrderItem
	var billing *entity.Address
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		items, err = ol.itemRepo.GetListByOrderID(gCtx, orderID)
		if err != nil && !errors.Is(err, entity.ErrDataNotFound) {
			return fmt.Errorf("get items: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		billing, err = ol.addressRepo.GetInvoiceAddress(gCtx, orderID)
		if err != nil && !errors.Is(err, entity.ErrDataNotFound) {
			return fmt.Errorf("get invoice address: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return items, billing, nil
}
