package service_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"paybox/internal/entity"
	"paybox/pkg/storage/postgres"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var platformKey = sync.OnceValue(func() *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	return key
})

// writePublicKey stores the platform public key as a PKIX PEM file.
func writePublicKey(t *testing.T) string {
	t.Helper()

	der, err := x509.MarshalPKIXPublicKey(&platformKey().PublicKey)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "paybox-public-key.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	return path
}

func signNotification(t *testing.T, n *entity.Notification) {
	t.Helper()

	digest := sha1.Sum([]byte(n.SignedString())) //nolint:gosec
	signature, err := rsa.SignPKCS1v15(rand.Reader, platformKey(), crypto.SHA1, digest[:])
	require.NoError(t, err)

	n.Sign = base64.StdEncoding.EncodeToString(signature)
}

func notificationValues(n *entity.Notification) url.Values {
	return url.Values{
		"montant": {n.Amount},
		"ref":     {n.Ref},
		"auto":    {n.Auto},
		"trans":   {n.Transaction},
		"erreur":  {n.ErrorCode},
		"sign":    {n.Sign},
	}
}

func generateFakeOrder() *entity.Order {
	order := &entity.Order{
		ID:            int64(gofakeit.Number(1, 999999)),
		Ref:           gofakeit.LetterN(9),
		CurrencyCode:  "EUR",
		TotalAmount:   decimal.NewFromFloat(gofakeit.Price(1, 500)).Round(2),
		CustomerEmail: gofakeit.Email(),
	}

	for range gofakeit.Number(1, 4) {
		order.Items = append(order.Items, &entity.OrderItem{
			ProductRef: gofakeit.UUID(),
			Title:      gofakeit.ProductName(),
			Quantity:   gofakeit.Number(1, 5),
		})
	}

	return order
}

func generateSuccessNotification(t *testing.T, order *entity.Order) *entity.Notification {
	t.Helper()

	n := &entity.Notification{
		Amount:      order.TotalAmount.Mul(decimal.NewFromInt(100)).StringFixed(0),
		Ref:         strconv.FormatInt(order.ID, 10),
		Auto:        gofakeit.DigitN(6),
		Transaction: gofakeit.DigitN(8),
		ErrorCode:   entity.SuccessCode,
	}
	signNotification(t, n)

	return n
}

type fakeConfig map[string]string

func (f fakeConfig) GetString(_ context.Context, key, def string) string {
	if value, ok := f[key]; ok {
		return value
	}
	return def
}

type fakeNotifier struct {
	mu       sync.Mutex
	merchant []*entity.MerchantNotification
	customer []*entity.CustomerConfirmation
	failWith error
}

func (f *fakeNotifier) NotifyMerchant(_ context.Context, n *entity.MerchantNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.merchant = append(f.merchant, n)
	return f.failWith
}

func (f *fakeNotifier) NotifyCustomer(_ context.Context, c *entity.CustomerConfirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customer = append(f.customer, c)
	return f.failWith
}

func (f *fakeNotifier) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.merchant), len(f.customer)
}

// fakeOrderRepository keeps orders in memory with an atomic paid transition.
type fakeOrderRepository struct {
	mu          sync.Mutex
	orders      map[int64]*entity.Order
	transitions int
}

func newFakeOrderRepository(orders ...*entity.Order) *fakeOrderRepository {
	repo := &fakeOrderRepository{orders: make(map[int64]*entity.Order)}
	for _, order := range orders {
		clone := *order
		repo.orders[order.ID] = &clone
	}
	return repo
}

func (f *fakeOrderRepository) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return nil, entity.ErrDataNotFound
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepository) SetTransactionRef(_ context.Context, id int64, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return entity.ErrDataNotFound
	}
	order.TransactionRef = ref
	return nil
}

func (f *fakeOrderRepository) MarkPaid(_ context.Context, _ postgres.QueryExecuter, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok || order.Paid {
		return false, nil
	}
	order.Paid = true
	f.transitions++
	return true, nil
}

type fakeTxManager struct{}

func (fakeTxManager) ExecuteInTransaction(
	_ context.Context,
	_ string,
	fn func(tx postgres.QueryExecuter) error,
) error {
	return fn(nil)
}
