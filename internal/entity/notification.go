package entity

import (
	"strings"
	"time"
)

type (
	Outcome       string
	PaymentStatus string
	EventType     string
)

const (
	OutcomeConfirmed          Outcome = "confirmed"
	OutcomeAlreadyPaid        Outcome = "already_paid"
	OutcomeRejected           Outcome = "rejected"
	OutcomeOrderNotFound      Outcome = "order_not_found"
	OutcomeSignatureInvalid   Outcome = "signature_invalid"
	OutcomeKeyUnavailable     Outcome = "key_unavailable"
	OutcomeConfirmationFailed Outcome = "confirmation_failed"

	PaymentStatusUnknown PaymentStatus = "UNKNOWN"
	PaymentStatusNotPaid PaymentStatus = "NOT PAID"
	PaymentStatusPaid    PaymentStatus = "PAID"

	EventMerchantPaymentStatus    EventType = "merchant_payment_status"
	EventCustomerPaymentConfirmed EventType = "customer_payment_confirmation"

	// UndefinedOrderRef is reported when the notified order could not be resolved.
	UndefinedOrderRef = "UNDEFINED"

	// SuccessCode is compared as a string: leading zeros are significant.
	SuccessCode = "00000"
)

// Notification holds the variables echoed back by the platform, in declaration order.
type Notification struct {
	Amount      string `form:"montant" json:"montant"`
	Ref         string `form:"ref"     json:"ref"`
	Auto        string `form:"auto"    json:"auto"`
	Transaction string `form:"trans"   json:"trans"`
	ErrorCode   string `form:"erreur"  json:"erreur"`
	Sign        string `form:"sign"    json:"sign"`
}

// NotificationFromLookup extracts the known variables, missing ones are empty.
func NotificationFromLookup(get func(name string) string) *Notification {
	return &Notification{
		Amount:      get("montant"),
		Ref:         get("ref"),
		Auto:        get("auto"),
		Transaction: get("trans"),
		ErrorCode:   get("erreur"),
		Sign:        get("sign"),
	}
}

// SignedString rebuilds the exact string the platform signed.
func (n *Notification) SignedString() string {
	var sb strings.Builder
	sb.WriteString("montant=")
	sb.WriteString(n.Amount)
	sb.WriteString("&ref=")
	sb.WriteString(n.Ref)
	sb.WriteString("&auto=")
	sb.WriteString(n.Auto)
	sb.WriteString("&trans=")
	sb.WriteString(n.Transaction)
	sb.WriteString("&erreur=")
	sb.WriteString(n.ErrorCode)
	return sb.String()
}

type NotificationResult struct {
	Outcome  Outcome       `json:"outcome"`
	OrderID  int64         `json:"order_id"`
	OrderRef string        `json:"order_ref"`
	Status   PaymentStatus `json:"status"`
	Message  string        `json:"message"`
}

// With records the terminal outcome of the processing.
func (r *NotificationResult) With(outcome Outcome, message string) *NotificationResult {
	r.Outcome = outcome
	r.Message = message
	return r
}

type MerchantNotification struct {
	Type       EventType     `json:"type"`
	OrderID    int64         `json:"order_id"`
	OrderRef   string        `json:"order_ref"`
	Status     PaymentStatus `json:"status"`
	Message    string        `json:"message"`
	OccurredAt time.Time     `json:"occurred_at"`
}

type CustomerConfirmation struct {
	Type          EventType `json:"type"`
	OrderID       int64     `json:"order_id"`
	OrderRef      string    `json:"order_ref"`
	CustomerEmail string    `json:"customer_email"`
	StoreEmail    string    `json:"store_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}
