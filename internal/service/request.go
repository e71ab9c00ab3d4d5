package service

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paybox/internal/entity"
	"paybox/pkg/logger"
	"paybox/pkg/metric"

	"github.com/nyaruka/phonenumbers"
	"github.com/shopspring/decimal"
)

const (
	_xmlProlog = `<?xml version="1.0" encoding="utf-8"?>`

	_returnMethod = "POST"

	_defaultPhoneCountryCode = "+00"
	_defaultPhoneNumber      = "00000000"
)

var _minorUnits = decimal.NewFromInt(100)

type (
	shoppingCartXML struct {
		XMLName       xml.Name `xml:"shoppingcart"`
		TotalQuantity int      `xml:"total>totalQuantity"`
	}

	billingXML struct {
		XMLName xml.Name          `xml:"Billing"`
		Address billingAddressXML `xml:"Address"`
	}

	billingAddressXML struct {
		FirstName              string `xml:"FirstName"`
		LastName               string `xml:"LastName"`
		Address1               string `xml:"Address1"`
		ZipCode                string `xml:"ZipCode"`
		City                   string `xml:"City"`
		CountryCode            string `xml:"CountryCode"`
		CountryCodeMobilePhone string `xml:"CountryCodeMobilePhone"`
		MobilePhone            string `xml:"MobilePhone"`
	}
)

type RequestBuilderOption func(*RequestBuilder)

// WithClock overrides the source of PBX_TIME.
func WithClock(now func() time.Time) RequestBuilderOption {
	return func(rb *RequestBuilder) {
		rb.now = now
	}
}

func WithHashAvailability(available HashAvailability) RequestBuilderOption {
	return func(rb *RequestBuilder) {
		rb.hashAvailable = available
	}
}

// RequestBuilder assembles the signed parameter set posted to the payment page.
type RequestBuilder struct {
	settings  ConfigProvider
	orders    *OrderLoader
	orderRepo OrderRepository
	currency  CurrencyCodeResolver
	logger    logger.Logger
	metrics   metric.Payment

	now           func() time.Time
	hashAvailable HashAvailability
}

func NewRequestBuilder(
	settings ConfigProvider,
	orders *OrderLoader,
	orderRepo OrderRepository,
	currency CurrencyCodeResolver,
	logger logger.Logger,
	metrics metric.Payment,
	opts ...RequestBuilderOption,
) *RequestBuilder {
	rb := &RequestBuilder{
		settings:      settings,
		orders:        orders,
		orderRepo:     orderRepo,
		currency:      currency,
		logger:        logger,
		metrics:       metrics,
		now:           time.Now,
		hashAvailable: defaultHashAvailability,
	}

	for _, opt := range opts {
		opt(rb)
	}

	return rb
}

func (rb *RequestBuilder) Build(ctx context.Context, orderID int64) (*entity.PaymentRequest, error) {
	const op = "service.RequestBuilder.Build"
	log := rb.logger.Ctx(ctx)

	request, err := rb.build(ctx, orderID)
	if err != nil {
		rb.metrics.RequestFailed(failureReason(err))
		log.LogAttrs(ctx, logger.ErrorLevel, "payment request build failed",
			logger.String("op", op),
			logger.Int64("order_id", orderID),
			logger.Err(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashName, _ := request.Get(entity.ParamHash)
	log.LogAttrs(ctx, logger.InfoLevel, "payment request built",
		logger.String("op", op),
		logger.Int64("order_id", orderID),
		logger.String("platform_url", request.PlatformURL),
		logger.String("hash", hashName),
	)

	return request, nil
}

func (rb *RequestBuilder) build(ctx context.Context, orderID int64) (*entity.PaymentRequest, error) {
	settings := loadSettings(ctx, rb.settings)

	platformURL := strings.TrimSpace(settings.ActivePlatformURL())
	if platformURL == "" {
		return nil, fmt.Errorf("%w: platform URL is empty for mode %q", entity.ErrConfiguration, settings.Mode)
	}

	if err := requireIdentifiers(settings); err != nil {
		return nil, err
	}

	secretKey, err := decodeSecretKey(settings.PrivateKey)
	if err != nil {
		return nil, err
	}

	hashName, hash, err := selectHashAlgorithm(rb.hashAvailable)
	if err != nil {
		return nil, err
	}

	order, err := rb.orders.Load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	transactionID := TransactionID(order.ID)
	if err = rb.orderRepo.SetTransactionRef(ctx, order.ID, transactionID); err != nil {
		return nil, fmt.Errorf("set transaction ref: %w", err)
	}
	order.TransactionRef = transactionID

	currencyCode, err := rb.currency.Resolve(ctx, order.CurrencyCode)
	if err != nil {
		return nil, err
	}

	request := entity.NewPaymentRequest(platformURL)
	request.Add(entity.ParamSite, settings.SiteNumber)
	request.Add(entity.ParamRank, settings.Rank)
	request.Add(entity.ParamIdentifier, settings.InternalID)
	request.Add(entity.ParamReturn, entity.ReturnVariables)
	request.Add(entity.ParamCancelURL, settings.CancelURL)
	request.Add(entity.ParamSuccessURL, settings.SuccessURL)
	request.Add(entity.ParamRefusedURL, settings.RefusedURL)
	request.Add(entity.ParamIPNURL, settings.IPNURL)
	request.Add(entity.ParamTotal, MinorUnits(order.TotalAmount))
	request.Add(entity.ParamCurrency, currencyCode)
	request.Add(entity.ParamCommand, transactionID)
	request.Add(entity.ParamPayerEmail, order.CustomerEmail)
	request.Add(entity.ParamTime, rb.now().Format(entity.TimeLayout))
	request.Add(entity.ParamReturnMethod, _returnMethod)

	cart, err := shoppingCart(order)
	if err != nil {
		return nil, err
	}
	request.Add(entity.ParamShoppingCart, cart)

	if order.Billing != nil {
		billing, billingErr := rb.billing(ctx, order)
		if billingErr != nil {
			return nil, billingErr
		}
		request.Add(entity.ParamBilling, billing)
	}

	request.Add(entity.ParamHash, hashName)
	request.Add(entity.ParamSecret, settings.PrivateKey)
	request.Add(entity.ParamHMAC, signMessage(hash, secretKey, request.SigningString()))

	rb.metrics.RequestBuilt(settings.Mode)

	return request, nil
}

// TransactionID renders an order id as the fixed width command id.
func TransactionID(orderID int64) string {
	return fmt.Sprintf("%010d", orderID)
}

// MinorUnits converts an amount to cents, rounding half away from zero.
func MinorUnits(amount decimal.Decimal) string {
	return strconv.FormatInt(amount.Mul(_minorUnits).Round(0).IntPart(), 10)
}

func requireIdentifiers(settings *entity.Settings) error {
	required := map[string]string{
		entity.SettingSiteNumber: settings.SiteNumber,
		entity.SettingRank:       settings.Rank,
		entity.SettingInternalID: settings.InternalID,
		entity.SettingPrivateKey: settings.PrivateKey,
	}
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is blank", entity.ErrConfiguration, key)
		}
	}
	return nil
}

func shoppingCart(order *entity.Order) (string, error) {
	return marshalFlatXML(shoppingCartXML{TotalQuantity: order.TotalQuantity()})
}

func (rb *RequestBuilder) billing(ctx context.Context, order *entity.Order) (string, error) {
	address := order.Billing
	countryCode, mobile := rb.splitPhone(ctx, order.ID, address)

	return marshalFlatXML(billingXML{
		Address: billingAddressXML{
			FirstName:              address.FirstName,
			LastName:               address.LastName,
			Address1:               address.Address1,
			ZipCode:                address.ZipCode,
			City:                   address.City,
			CountryCode:            address.CountryCode,
			CountryCodeMobilePhone: countryCode,
			MobilePhone:            mobile,
		},
	})
}

// splitPhone returns the calling code and national number of the contact phone.
func (rb *RequestBuilder) splitPhone(ctx context.Context, orderID int64, address *entity.Address) (string, string) {
	phone := address.ContactPhone()

	number, err := phonenumbers.Parse(phone, strings.ToUpper(address.CountryAlpha2))
	if err == nil && number.GetCountryCode() != 0 {
		national := phonenumbers.GetNationalSignificantNumber(number)
		if national != "" {
			return "+" + strconv.Itoa(int(number.GetCountryCode())), national
		}
	}

	rb.logger.Ctx(ctx).LogAttrs(ctx, logger.ErrorLevel, "invalid billing phone number, using defaults",
		logger.Int64("order_id", orderID),
		logger.String("country", address.CountryAlpha2),
		logger.Err(err),
	)

	return _defaultPhoneCountryCode, _defaultPhoneNumber
}

func marshalFlatXML(v any) (string, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal %T: %w", v, err)
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(_xmlProlog + string(body)), nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entity.ErrConfiguration):
		return "configuration"
	case errors.Is(err, entity.ErrHashAlgorithmUnavailable):
		return "hash_algorithm"
	case errors.Is(err, entity.ErrCurrencyResolution):
		return "currency"
	case errors.Is(err, entity.ErrDataNotFound):
		return "order_not_found"
	default:
		return "internal"
	}
}
