package repository

import (
	"context"
	"errors"
	"fmt"

	"paybox/internal/entity"
	"paybox/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db *postgres.Postgres
}

func NewOrderRepository(db *postgres.Postgres) *OrderRepository {
	return &OrderRepository{db}
}

func (or *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	const op = "repository.order.GetByID"

	query := or.db.Builder.
		Select("id", "ref", "currency_code", "total_amount::text", "paid", "transaction_ref", "customer_email").
		From(`"orders"`).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	var total string
	result := &entity.Order{}
	err = or.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Ref,
		&result.CurrencyCode,
		&total,
		&result.Paid,
		&result.TransactionRef,
		&result.CustomerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	if result.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("%s: parse total amount %q: %w", op, total, err)
	}

	return result, nil
}

func (or *OrderRepository) SetTransactionRef(ctx context.Context, id int64, ref string) error {
	const op = "repository.order.SetTransactionRef"

	query := or.db.Builder.Update(`"orders"`).
		Set("transaction_ref", ref).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := or.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrDataNotFound
	}

	return nil
}

// MarkPaid flips the paid flag only if it is still false. It reports whether
// this call performed the transition, so concurrent callers see exactly one winner.
func (or *OrderRepository) MarkPaid(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	id int64,
) (bool, error) {
	const op = "repository.order.MarkPaid"

	query := or.db.Builder.Update(`"orders"`).
		Set("paid", true).
		Set("paid_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "paid": false})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: building query: %w", op, err)
	}

	tag, err := queryExecuter.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("%s: exec: %w", op, err)
	}

	return tag.RowsAffected() == 1, nil
}
