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

// SettingRepository reads module settings from the module_config key/value table.
type SettingRepository struct {
	db *postgres.Postgres
}

func NewSettingRepository(db *postgres.Postgres) *SettingRepository {
	return &SettingRepository{db}
}

func (sr *SettingRepository) Get(ctx context.Context, name string) (string, error) {
	const op = "repository.setting.Get"

	query := sr.db.Builder.Select("value").
		From("module_config").
		Where(squirrel.Eq{"name": name}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: building query: %w", op, err)
	}

	var value *string
	if err = sr.db.Pool.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entity.ErrDataNotFound
		}
		return "", fmt.Errorf("%s: query row: %w", op, err)
	}
	if value == nil {
		return "", entity.ErrDataNotFound
	}

	return *value, nil
}

func (sr *SettingRepository) List(ctx context.Context) (map[string]string, error) {
	const op = "repository.setting.List"

	query := sr.db.Builder.Select("name", "value").
		From("module_config").
		Where(squirrel.NotEq{"value": nil})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := sr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("%s: rows scan: %w", op, err)
		}
		result[name] = value
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return result, nil
}
