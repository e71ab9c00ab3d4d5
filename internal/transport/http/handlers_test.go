package httpt_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"paybox/internal/entity"
	httpt "paybox/internal/transport/http"
	mock_httpt "paybox/internal/transport/http/mock"
	"paybox/pkg/logger"
	"paybox/pkg/metric"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	builder       *mock_httpt.MockRequestBuilder
	eligibility   *mock_httpt.MockEligibilityChecker
	notifications *mock_httpt.MockNotificationProcessor
	settings      *mock_httpt.MockSettingsReader
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHandler(t *testing.T) (*httpt.PaymentHandler, *handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &handlerMocks{
		builder:       mock_httpt.NewMockRequestBuilder(ctrl),
		eligibility:   mock_httpt.NewMockEligibilityChecker(ctrl),
		notifications: mock_httpt.NewMockNotificationProcessor(ctrl),
		settings:      mock_httpt.NewMockSettingsReader(ctrl),
	}

	handler, err := httpt.NewPaymentHandler(
		mocks.builder,
		mocks.eligibility,
		mocks.notifications,
		mocks.settings,
		httpt.Redirects{
			OrderPlacedURL: "https://shop.example/order/placed",
			OrderFailedURL: "https://shop.example/order/failed?step=payment",
		},
		nil,
		logger.NewNop(),
		metric.NewFactory().HTTP(),
	)
	require.NoError(t, err)

	return handler, mocks
}

func serve(handler *httpt.PaymentHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.Engine().ServeHTTP(rec, req)
	return rec
}

func TestPaymentHandler_CreatePaymentRequest(t *testing.T) {
	request := entity.NewPaymentRequest("https://preprod-tpeweb.paybox.com/cgi/MYchoix_pagepaiement.cgi")
	request.Add(entity.ParamSite, "1999888")
	request.Add(entity.ParamTotal, "2590")
	request.Add(entity.ParamHMAC, "ABCDEF")

	testCases := []struct {
		desc         string
		orderID      string
		mocks        func(m *handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			desc:    "Success",
			orderID: "42",
			mocks: func(m *handlerMocks) {
				m.builder.EXPECT().Build(gomock.Any(), int64(42)).Return(request, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			desc:         "InvalidOrderID",
			orderID:      "abc",
			mocks:        func(*handlerMocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid order ID format",
		},
		{
			desc:         "NegativeOrderID",
			orderID:      "-3",
			mocks:        func(*handlerMocks) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid order ID format",
		},
		{
			desc:    "OrderNotFound",
			orderID: "7",
			mocks: func(m *handlerMocks) {
				m.builder.EXPECT().Build(gomock.Any(), int64(7)).
					Return(nil, fmt.Errorf("service.RequestBuilder.Build: %w", entity.ErrDataNotFound))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "Order not found",
		},
		{
			desc:    "UnsupportedCurrency",
			orderID: "7",
			mocks: func(m *handlerMocks) {
				m.builder.EXPECT().Build(gomock.Any(), int64(7)).Return(nil, entity.ErrCurrencyResolution)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: "Order currency is not supported",
		},
		{
			desc:    "ConfigurationError",
			orderID: "7",
			mocks: func(m *handlerMocks) {
				m.builder.EXPECT().Build(gomock.Any(), int64(7)).Return(nil, entity.ErrConfiguration)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Payment is temporarily unavailable",
		},
		{
			desc:    "NoHashAlgorithm",
			orderID: "7",
			mocks: func(m *handlerMocks) {
				m.builder.EXPECT().Build(gomock.Any(), int64(7)).Return(nil, entity.ErrHashAlgorithmUnavailable)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Payment is temporarily unavailable",
		},
		{
			desc:    "Timeout",
			orderID: "7",
			mocks: func(m *handlerMocks) {
				m.builder.EXPECT().Build(gomock.Any(), int64(7)).Return(nil, context.DeadlineExceeded)
			},
			expectedCode: http.StatusGatewayTimeout,
			expectedBody: "Request timed out",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			handler, mocks := newTestHandler(t)
			tc.mocks(mocks)

			req := httptest.NewRequest(http.MethodPost, "/paybox/orders/"+tc.orderID+"/payment", nil)
			rec := serve(handler, req)

			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedBody != "" {
				var body httpt.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tc.expectedBody, body.Error)
				return
			}

			var got entity.PaymentRequest
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, request.PlatformURL, got.PlatformURL)
			assert.Equal(t, request.Params, got.Params)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestPaymentHandler_Eligibility(t *testing.T) {
	testCases := []struct {
		desc     string
		eligible bool
	}{
		{desc: "Eligible", eligible: true},
		{desc: "NotEligible", eligible: false},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			handler, mocks := newTestHandler(t)
			mocks.eligibility.EXPECT().
				Check(gomock.Any(), int64(12), "192.0.2.10").
				Return(tc.eligible)

			req := httptest.NewRequest(http.MethodGet, "/paybox/orders/12/eligibility", nil)
			req.RemoteAddr = "192.0.2.10:51234"
			rec := serve(handler, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var body httpt.EligibilityResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, httpt.EligibilityResponse{OrderID: 12, Eligible: tc.eligible}, body)
		})
	}
}

func TestPaymentHandler_Callback(t *testing.T) {
	values := url.Values{
		"montant": {"2590"},
		"ref":     {"42"},
		"auto":    {"XXXXXX"},
		"trans":   {"12345678"},
		"erreur":  {"00000"},
		"sign":    {"c2lnbmF0dXJl"},
	}

	testCases := []struct {
		desc    string
		request func() *http.Request
	}{
		{
			desc: "PostForm",
			request: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/paybox/callback", strings.NewReader(values.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
		},
		{
			desc: "QueryString",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/paybox/callback?"+values.Encode(), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			handler, mocks := newTestHandler(t)
			mocks.notifications.EXPECT().
				Process(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, got url.Values) *entity.NotificationResult {
					for key := range values {
						assert.Equal(t, values.Get(key), got.Get(key), key)
					}
					return &entity.NotificationResult{
						Outcome: entity.OutcomeConfirmed,
						OrderID: 42,
						Status:  entity.PaymentStatusPaid,
					}
				})

			rec := serve(handler, tc.request())

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestPaymentHandler_CallbackAlwaysAcknowledges(t *testing.T) {
	t.Parallel()

	handler, mocks := newTestHandler(t)
	mocks.notifications.EXPECT().
		Process(gomock.Any(), gomock.Any()).
		Return(&entity.NotificationResult{
			Outcome: entity.OutcomeSignatureInvalid,
			Status:  entity.PaymentStatusNotPaid,
		})

	req := httptest.NewRequest(http.MethodPost, "/paybox/callback", strings.NewReader("ref=42&sign=broken"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPaymentHandler_Redirects(t *testing.T) {
	testCases := []struct {
		desc     string
		path     string
		expected string
	}{
		{
			desc:     "Success",
			path:     "/paybox/success?ref=42&montant=2590",
			expected: "https://shop.example/order/placed?order_id=42",
		},
		{
			desc:     "Rejected",
			path:     "/paybox/rejected?ref=42",
			expected: "https://shop.example/order/failed?message=Your+payment+was+rejected.&order_id=42&step=payment",
		},
		{
			desc:     "Canceled",
			path:     "/paybox/cancel?ref=0000000042",
			expected: "https://shop.example/order/failed?message=Your+payment+was+canceled.&order_id=42&step=payment",
		},
		{
			desc:     "UnparsableRef",
			path:     "/paybox/success?ref=abc",
			expected: "https://shop.example/order/placed?order_id=0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			handler, _ := newTestHandler(t)

			rec := serve(handler, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tc.expected, rec.Header().Get("Location"))
		})
	}
}

func TestPaymentHandler_Status(t *testing.T) {
	t.Parallel()

	raw := make(map[string]string, len(entity.SettingDefaults))
	for key, value := range entity.SettingDefaults {
		raw[key] = value
	}
	raw[entity.SettingPrivateKey] = "0123456789ABCDEF"

	handler, mocks := newTestHandler(t)
	mocks.settings.EXPECT().Settings(gomock.Any()).Return(entity.NewSettings(raw))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/paybox/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body httpt.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, entity.ModeTest, body.Mode)
	assert.False(t, body.Completed)
	assert.ElementsMatch(t, []string{
		entity.SettingCancelURL,
		entity.SettingSuccessURL,
		entity.SettingRefusedURL,
		entity.SettingIPNURL,
		entity.SettingAllowedIPList,
	}, body.MissingKeys)
	assert.Equal(t, "********", body.Settings[entity.SettingPrivateKey])
	assert.NotContains(t, rec.Body.String(), "0123456789ABCDEF")
}

func TestPaymentHandler_Health(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewPaymentHandler_InvalidTrustedProxy(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	_, err := httpt.NewPaymentHandler(
		mock_httpt.NewMockRequestBuilder(ctrl),
		mock_httpt.NewMockEligibilityChecker(ctrl),
		mock_httpt.NewMockNotificationProcessor(ctrl),
		mock_httpt.NewMockSettingsReader(ctrl),
		httpt.Redirects{},
		[]string{"not-an-ip"},
		logger.NewNop(),
		metric.NewFactory().HTTP(),
	)
	require.Error(t, err)
}

func TestPaymentHandler_ReloadSettings(t *testing.T) {
	testCases := []struct {
		desc         string
		mocks        func(m *handlerMocks)
		expectedCode int
	}{
		{
			desc: "Reloaded",
			mocks: func(m *handlerMocks) {
				gomock.InOrder(
					m.settings.EXPECT().Reload(gomock.Any()).Return(nil),
					m.settings.EXPECT().Settings(gomock.Any()).Return(entity.NewSettings(map[string]string{
						entity.SettingMode: entity.ModeProduction,
					})),
				)
			},
			expectedCode: http.StatusOK,
		},
		{
			desc: "StoreUnavailable",
			mocks: func(m *handlerMocks) {
				m.settings.EXPECT().Reload(gomock.Any()).Return(fmt.Errorf("list settings: %w", context.DeadlineExceeded))
			},
			expectedCode: http.StatusGatewayTimeout,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			handler, mocks := newTestHandler(t)
			tc.mocks(mocks)

			rec := serve(handler, httptest.NewRequest(http.MethodPost, "/paybox/settings/reload", nil))
			require.Equal(t, tc.expectedCode, rec.Code)

			if tc.expectedCode == http.StatusOK {
				var body httpt.StatusResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, entity.ModeProduction, body.Mode)
			}
		})
	}
}
