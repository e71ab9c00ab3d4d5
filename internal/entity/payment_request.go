package entity

import (
	"strings"
)

const (
	ParamSite         = "PBX_SITE"
	ParamRank         = "PBX_RANG"
	ParamIdentifier   = "PBX_IDENTIFIANT"
	ParamReturn       = "PBX_RETOUR"
	ParamCancelURL    = "PBX_ANNULE"
	ParamSuccessURL   = "PBX_EFFECTUE"
	ParamRefusedURL   = "PBX_REFUSE"
	ParamIPNURL       = "PBX_REPONDRE_A"
	ParamTotal        = "PBX_TOTAL"
	ParamCurrency     = "PBX_DEVISE"
	ParamCommand      = "PBX_CMD"
	ParamPayerEmail   = "PBX_PORTEUR"
	ParamTime         = "PBX_TIME"
	ParamReturnMethod = "PBX_RUF1"
	ParamShoppingCart = "PBX_SHOPPINGCART"
	ParamBilling      = "PBX_BILLING"
	ParamHash         = "PBX_HASH"
	ParamSecret       = "PBX_SECRET"
	ParamHMAC         = "PBX_HMAC"

	// ReturnVariables tells the platform which variables to send back and under which names.
	ReturnVariables = "montant:M;ref:R;auto:A;trans:T;erreur:E;sign:K"

	// TimeLayout renders timestamps as ISO-8601 with a numeric offset.
	TimeLayout = "2006-01-02T15:04:05-07:00"
)

type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaymentRequest keeps parameters in insertion order, which is the order they are signed in.
type PaymentRequest struct {
	PlatformURL string  `json:"platform_url"`
	Params      []Param `json:"parameters"`
}

func NewPaymentRequest(platformURL string) *PaymentRequest {
	return &PaymentRequest{PlatformURL: platformURL}
}

func (r *PaymentRequest) Add(name, value string) {
	r.Params = append(r.Params, Param{Name: name, Value: value})
}

func (r *PaymentRequest) Get(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// SigningString joins every parameter except the HMAC as key=value pairs.
func (r *PaymentRequest) SigningString() string {
	var sb strings.Builder
	for _, p := range r.Params {
		if p.Name == ParamHMAC {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	return sb.String()
}

// Values returns the parameters as a map for form renderers.
func (r *PaymentRequest) Values() map[string]string {
	values := make(map[string]string, len(r.Params))
	for _, p := range r.Params {
		values[p.Name] = p.Value
	}
	return values
}
