package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"paybox/internal/entity"
	"paybox/internal/service"
	mock_service "paybox/internal/service/mock"
	"paybox/pkg/logger"
	"paybox/pkg/metric"
	"paybox/pkg/storage/postgres"
	"paybox/pkg/storage/postgres/transaction"
	mock_transaction "paybox/pkg/storage/postgres/transaction/mock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var confirmationSettings = fakeConfig{
	entity.SettingSendConfirmation: "1",
	entity.SettingStoreEmail:       "shop@example.com",
}

func newNotificationService(
	keyPath string,
	orderRepo service.OrderRepository,
	txManager transaction.Manager,
	settings service.ConfigProvider,
	notifier service.Notifier,
) *service.NotificationService {
	return service.NewNotificationService(
		service.NewFilePublicKeySource(keyPath),
		orderRepo,
		txManager,
		settings,
		notifier,
		logger.NewNop(),
		metric.NewFactory().Payment(),
	)
}

type processExpected struct {
	outcome   entity.Outcome
	status    entity.PaymentStatus
	orderRef  string
	message   string
	customers int
}

func TestNotificationService_Process(t *testing.T) {
	ctx := context.Background()
	keyPath := writePublicKey(t)

	testCases := []struct {
		desc     string
		setup    func(t *testing.T, order *entity.Order) *entity.Notification
		mocks    func(orderRepo *mock_service.MockOrderRepository, txManager *mock_transaction.MockManager, order *entity.Order)
		keyPath  string
		expected func(order *entity.Order) processExpected
	}{
		{
			desc:  "Confirmed",
			setup: generateSuccessNotification,
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				txManager *mock_transaction.MockManager,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
				txManager.EXPECT().ExecuteInTransaction(gomock.Any(), "ConfirmPayment", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(postgres.QueryExecuter) error) error {
						return fn(nil)
					}).Times(1)
				orderRepo.EXPECT().MarkPaid(gomock.Any(), nil, order.ID).Return(true, nil).Times(1)
			},
			expected: func(order *entity.Order) processExpected {
				return processExpected{
					outcome:   entity.OutcomeConfirmed,
					status:    entity.PaymentStatusPaid,
					orderRef:  order.Ref,
					message:   "Order ID " + strconv.FormatInt(order.ID, 10) + " is confirmed.",
					customers: 1,
				}
			},
		},
		{
			desc: "AlreadyPaid",
			setup: func(t *testing.T, order *entity.Order) *entity.Notification {
				order.Paid = true
				return generateSuccessNotification(t, order)
			},
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				_ *mock_transaction.MockManager,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
			},
			expected: func(order *entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeAlreadyPaid,
					status:   entity.PaymentStatusPaid,
					orderRef: order.Ref,
					message:  "Order ID " + strconv.FormatInt(order.ID, 10) + " already paid, message ignored.",
				}
			},
		},
		{
			desc:  "LostConcurrentTransition",
			setup: generateSuccessNotification,
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				txManager *mock_transaction.MockManager,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
				txManager.EXPECT().ExecuteInTransaction(gomock.Any(), "ConfirmPayment", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fn func(postgres.QueryExecuter) error) error {
						return fn(nil)
					}).Times(1)
				orderRepo.EXPECT().MarkPaid(gomock.Any(), nil, order.ID).Return(false, nil).Times(1)
			},
			expected: func(order *entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeAlreadyPaid,
					status:   entity.PaymentStatusPaid,
					orderRef: order.Ref,
					message:  "Order ID " + strconv.FormatInt(order.ID, 10) + " already paid, message ignored.",
				}
			},
		},
		{
			desc:  "ConfirmationFailed",
			setup: generateSuccessNotification,
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				txManager *mock_transaction.MockManager,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
				txManager.EXPECT().ExecuteInTransaction(gomock.Any(), "ConfirmPayment", gomock.Any()).
					Return(errors.New("connection reset")).Times(1)
			},
			expected: func(order *entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeConfirmationFailed,
					status:   entity.PaymentStatusNotPaid,
					orderRef: order.Ref,
				}
			},
		},
		{
			desc: "Rejected",
			setup: func(t *testing.T, order *entity.Order) *entity.Notification {
				n := generateSuccessNotification(t, order)
				n.ErrorCode = "00001"
				signNotification(t, n)
				return n
			},
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				_ *mock_transaction.MockManager,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
			},
			expected: func(order *entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeRejected,
					status:   entity.PaymentStatusNotPaid,
					orderRef: order.Ref,
					message:  "Order cannot be confirmed, Paybox returned error 00001: " + service.Describe("00001"),
				}
			},
		},
		{
			desc: "NumericZeroIsNotSuccess",
			setup: func(t *testing.T, order *entity.Order) *entity.Notification {
				n := generateSuccessNotification(t, order)
				n.ErrorCode = "0"
				signNotification(t, n)
				return n
			},
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				_ *mock_transaction.MockManager,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(order, nil).Times(1)
			},
			expected: func(order *entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeRejected,
					status:   entity.PaymentStatusNotPaid,
					orderRef: order.Ref,
				}
			},
		},
		{
			desc:  "OrderNotFound",
			setup: generateSuccessNotification,
			mocks: func(
				orderRepo *mock_service.MockOrderRepository,
				_ *mock_transaction.MockManager,
				order *entity.Order,
			) {
				orderRepo.EXPECT().GetByID(gomock.Any(), order.ID).Return(nil, entity.ErrDataNotFound).Times(1)
			},
			expected: func(order *entity.Order) processExpected {
				id := strconv.FormatInt(order.ID, 10)
				return processExpected{
					outcome:  entity.OutcomeOrderNotFound,
					status:   entity.PaymentStatusNotPaid,
					orderRef: entity.UndefinedOrderRef,
					message:  "Order ID " + id + " was not found. Transaction reference is '" + id + "'.",
				}
			},
		},
		{
			desc: "NonNumericReference",
			setup: func(t *testing.T, order *entity.Order) *entity.Notification {
				n := generateSuccessNotification(t, order)
				n.Ref = "abc"
				signNotification(t, n)
				return n
			},
			mocks: func(*mock_service.MockOrderRepository, *mock_transaction.MockManager, *entity.Order) {},
			expected: func(*entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeOrderNotFound,
					status:   entity.PaymentStatusNotPaid,
					orderRef: entity.UndefinedOrderRef,
					message:  "Order ID 0 was not found. Transaction reference is 'abc'.",
				}
			},
		},
		{
			desc: "SignatureInvalid",
			setup: func(t *testing.T, order *entity.Order) *entity.Notification {
				n := generateSuccessNotification(t, order)
				n.Amount += "0"
				return n
			},
			mocks: func(*mock_service.MockOrderRepository, *mock_transaction.MockManager, *entity.Order) {},
			expected: func(*entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeSignatureInvalid,
					status:   entity.PaymentStatusUnknown,
					orderRef: entity.UndefinedOrderRef,
					message:  "Request parameters signature verification failed.",
				}
			},
		},
		{
			desc:    "KeyUnavailable",
			setup:   generateSuccessNotification,
			keyPath: filepath.Join(t.TempDir(), "missing.pem"),
			mocks:   func(*mock_service.MockOrderRepository, *mock_transaction.MockManager, *entity.Order) {},
			expected: func(*entity.Order) processExpected {
				return processExpected{
					outcome:  entity.OutcomeKeyUnavailable,
					status:   entity.PaymentStatusUnknown,
					orderRef: entity.UndefinedOrderRef,
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			orderRepo := mock_service.NewMockOrderRepository(ctrl)
			txManager := mock_transaction.NewMockManager(ctrl)
			notifier := &fakeNotifier{}

			order := generateFakeOrder()
			notification := tc.setup(t, order)
			tc.mocks(orderRepo, txManager, order)

			path := keyPath
			if tc.keyPath != "" {
				path = tc.keyPath
			}

			ns := newNotificationService(path, orderRepo, txManager, confirmationSettings, notifier)
			result := ns.Process(ctx, notificationValues(notification))

			expected := tc.expected(order)
			require.Equal(t, expected.outcome, result.Outcome)
			require.Equal(t, expected.status, result.Status)
			require.Equal(t, expected.orderRef, result.OrderRef)
			if expected.message != "" {
				require.Equal(t, expected.message, result.Message)
			}

			merchants, customers := notifier.counts()
			require.Equal(t, 1, merchants)
			require.Equal(t, expected.customers, customers)

			sent := notifier.merchant[0]
			require.Equal(t, entity.EventMerchantPaymentStatus, sent.Type)
			require.Equal(t, result.OrderID, sent.OrderID)
			require.Equal(t, result.OrderRef, sent.OrderRef)
			require.Equal(t, result.Status, sent.Status)
			require.Equal(t, result.Message, sent.Message)
		})
	}
}

func TestNotificationService_Process_KeyUnavailableMessage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clef-publique-paybox.pem")
	ns := newNotificationService(path, newFakeOrderRepository(), fakeTxManager{}, fakeConfig{}, &fakeNotifier{})

	result := ns.Process(context.Background(), notificationValues(&entity.Notification{Ref: "12"}))

	require.Equal(t, "Failed to open "+path+", please check Paybox configuration", result.Message)
	require.Zero(t, result.OrderID)
}

func TestNotificationService_Process_Idempotent(t *testing.T) {
	t.Parallel()

	order := generateFakeOrder()
	repo := newFakeOrderRepository(order)
	notifier := &fakeNotifier{}
	ns := newNotificationService(writePublicKey(t), repo, fakeTxManager{}, confirmationSettings, notifier)

	values := notificationValues(generateSuccessNotification(t, order))

	first := ns.Process(context.Background(), values)
	second := ns.Process(context.Background(), values)

	require.Equal(t, entity.OutcomeConfirmed, first.Outcome)
	require.Equal(t, entity.OutcomeAlreadyPaid, second.Outcome)
	require.Equal(t, 1, repo.transitions)

	merchants, customers := notifier.counts()
	require.Equal(t, 2, merchants)
	require.Equal(t, 1, customers)
}

func TestNotificationService_Process_ConcurrentDeliveries(t *testing.T) {
	t.Parallel()

	const deliveries = 8

	order := generateFakeOrder()
	repo := newFakeOrderRepository(order)
	notifier := &fakeNotifier{}
	ns := newNotificationService(writePublicKey(t), repo, fakeTxManager{}, confirmationSettings, notifier)

	values := notificationValues(generateSuccessNotification(t, order))

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		confirmed int
	)
	for range deliveries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := ns.Process(context.Background(), values)
			if result.Outcome == entity.OutcomeConfirmed {
				mu.Lock()
				confirmed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, confirmed)
	require.Equal(t, 1, repo.transitions)

	merchants, customers := notifier.counts()
	require.Equal(t, deliveries, merchants)
	require.Equal(t, 1, customers)
}

func TestNotificationService_Process_CustomerConfirmationGate(t *testing.T) {
	testCases := []struct {
		desc      string
		settings  fakeConfig
		customers int
	}{
		{desc: "Enabled", settings: confirmationSettings, customers: 1},
		{
			desc: "Disabled",
			settings: fakeConfig{
				entity.SettingSendConfirmation: "0",
				entity.SettingStoreEmail:       "shop@example.com",
			},
			customers: 0,
		},
		{
			desc:      "NoStoreEmail",
			settings:  fakeConfig{entity.SettingSendConfirmation: "1"},
			customers: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			order := generateFakeOrder()
			notifier := &fakeNotifier{}
			ns := newNotificationService(
				writePublicKey(t), newFakeOrderRepository(order), fakeTxManager{}, tc.settings, notifier,
			)

			result := ns.Process(context.Background(), notificationValues(generateSuccessNotification(t, order)))
			require.Equal(t, entity.OutcomeConfirmed, result.Outcome)

			_, customers := notifier.counts()
			require.Equal(t, tc.customers, customers)
			if tc.customers > 0 {
				require.Equal(t, order.CustomerEmail, notifier.customer[0].CustomerEmail)
				require.Equal(t, "shop@example.com", notifier.customer[0].StoreEmail)
			}
		})
	}
}

func TestNotificationService_Process_NotifierFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	order := generateFakeOrder()
	notifier := &fakeNotifier{failWith: errors.New("broker down")}
	ns := newNotificationService(
		writePublicKey(t), newFakeOrderRepository(order), fakeTxManager{}, confirmationSettings, notifier,
	)

	result := ns.Process(context.Background(), notificationValues(generateSuccessNotification(t, order)))

	require.Equal(t, entity.OutcomeConfirmed, result.Outcome)
}

func TestParseOrderID(t *testing.T) {
	testCases := []struct {
		desc     string
		ref      string
		expected int64
	}{
		{desc: "Plain", ref: "42", expected: 42},
		{desc: "ZeroPadded", ref: "0000000042", expected: 42},
		{desc: "TrailingText", ref: "42abc", expected: 42},
		{desc: "LeadingSpace", ref: "  7", expected: 7},
		{desc: "NotNumeric", ref: "abc", expected: 0},
		{desc: "Empty", ref: "", expected: 0},
		{desc: "Negative", ref: "-3", expected: -3},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, service.ParseOrderID(tc.ref))
		})
	}
}
