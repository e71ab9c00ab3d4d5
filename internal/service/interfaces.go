package service

import (
	"context"
	"crypto/rsa"

	"paybox/internal/entity"
	"paybox/pkg/storage/postgres"
)

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock_service

type (
	OrderRepository interface {
		GetByID(ctx context.Context, id int64) (*entity.Order, error)
		SetTransactionRef(ctx context.Context, id int64, ref string) error
		MarkPaid(ctx context.Context, queryExecuter postgres.QueryExecuter, id int64) (bool, error)
	}

	ItemRepository interface {
		GetListByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	}

	AddressRepository interface {
		GetInvoiceAddress(ctx context.Context, orderID int64) (*entity.Address, error)
	}

	SettingRepository interface {
		Get(ctx context.Context, name string) (string, error)
		List(ctx context.Context) (map[string]string, error)
	}

	// ConfigProvider exposes named module settings with caller supplied defaults.
	ConfigProvider interface {
		GetString(ctx context.Context, key, def string) string
	}

	CurrencyFetcher interface {
		Fetch(ctx context.Context) ([]byte, error)
	}

	CurrencyStore interface {
		Load() ([]byte, error)
		Save(data []byte) error
	}

	CurrencyCodeResolver interface {
		Resolve(ctx context.Context, alpha string) (string, error)
	}

	PublicKeySource interface {
		PublicKey() (*rsa.PublicKey, error)
		Path() string
	}

	// Notifier delivers merchant and customer notifications to the mail sink.
	Notifier interface {
		NotifyMerchant(ctx context.Context, notification *entity.MerchantNotification) error
		NotifyCustomer(ctx context.Context, confirmation *entity.CustomerConfirmation) error
	}
)
