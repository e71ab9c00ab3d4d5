package repository

import (
	"context"
	"errors"
	"fmt"

	"paybox/internal/entity"
	"paybox/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type AddressRepository struct {
	db *postgres.Postgres
}

func NewAddressRepository(db *postgres.Postgres) *AddressRepository {
	return &AddressRepository{db}
}

func (ar *AddressRepository) GetInvoiceAddress(
	ctx context.Context,
	orderID int64,
) (*entity.Address, error) {
	const op = "repository.address.GetInvoiceAddress"

	query := ar.db.Builder.Select(
		"first_name", "last_name", "address1", "zip_code", "city",
		"country_alpha2", "country_code", "phone", "cellphone",
	).
		From("order_addresses").
		Where(squirrel.Eq{"order_id": orderID, "kind": "invoice"}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Address{}
	err = ar.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.FirstName,
		&result.LastName,
		&result.Address1,
		&result.ZipCode,
		&result.City,
		&result.CountryAlpha2,
		&result.CountryCode,
		&result.Phone,
		&result.CellPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}
