package repository

import (
	"context"
	"fmt"

	"paybox/internal/entity"
	"paybox/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
)

type ItemRepository struct {
	db *postgres.Postgres
}

func NewItemRepository(db *postgres.Postgres) *ItemRepository {
	return &ItemRepository{db}
}

func (ir *ItemRepository) GetListByOrderID(
	ctx context.Context,
	orderID int64,
) ([]*entity.OrderItem, error) {
	const op = "repository.item.GetListByOrderID"

	query := ir.db.Builder.Select("product_ref", "title", "quantity").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := ir.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make([]*entity.OrderItem, 0)
	for rows.Next() {
		item := &entity.OrderItem{}
		if err = rows.Scan(&item.ProductRef, &item.Title, &item.Quantity); err != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, err)
		}
		result = append(result, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}
