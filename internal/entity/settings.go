package entity

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	SettingSiteNumber       = "numero_site"
	SettingRank             = "rang_site"
	SettingInternalID       = "identifiant_interne"
	SettingPrivateKey       = "clef_privee"
	SettingPlatformURL      = "url_serveur"
	SettingPlatformTestURL  = "url_serveur_test"
	SettingCancelURL        = "url_retour_abandon"
	SettingSuccessURL       = "url_retour_succes"
	SettingRefusedURL       = "url_retour_refus"
	SettingIPNURL           = "url_ipn"
	SettingMode             = "mode"
	SettingMinimumAmount    = "minimum_amount"
	SettingMaximumAmount    = "maximum_amount"
	SettingSendConfirmation = "send_confirmation_email_on_successful_payment"
	SettingAllowedIPList    = "allowed_ip_list"
	SettingStoreEmail       = "store_email"

	ModeTest       = "TEST"
	ModeProduction = "PRODUCTION"

	maskedSecret = "********"
)

// ModuleSettingKeys lists every module setting, all required for a complete configuration.
var ModuleSettingKeys = []string{
	SettingSiteNumber,
	SettingRank,
	SettingInternalID,
	SettingPrivateKey,
	SettingPlatformURL,
	SettingPlatformTestURL,
	SettingCancelURL,
	SettingSuccessURL,
	SettingRefusedURL,
	SettingIPNURL,
	SettingMode,
	SettingMinimumAmount,
	SettingMaximumAmount,
	SettingSendConfirmation,
	SettingAllowedIPList,
}

// SettingDefaults are used when a key has never been stored.
var SettingDefaults = map[string]string{
	SettingSiteNumber:       "1234567",
	SettingRank:             "1234567",
	SettingInternalID:       "123456789",
	SettingPrivateKey:       "",
	SettingPlatformURL:      "https://tpeweb.paybox.com/cgi/MYchoix_pagepaiement.cgi",
	SettingPlatformTestURL:  "https://preprod-tpeweb.paybox.com/cgi/MYchoix_pagepaiement.cgi",
	SettingCancelURL:        "",
	SettingSuccessURL:       "",
	SettingRefusedURL:       "",
	SettingIPNURL:           "",
	SettingMode:             ModeTest,
	SettingMinimumAmount:    "0",
	SettingMaximumAmount:    "0",
	SettingSendConfirmation: "1",
	SettingAllowedIPList:    "",
	SettingStoreEmail:       "",
}

type Settings struct {
	SiteNumber       string
	Rank             string
	InternalID       string
	PrivateKey       string
	PlatformURL      string
	PlatformTestURL  string
	CancelURL        string
	SuccessURL       string
	RefusedURL       string
	IPNURL           string
	Mode             string
	MinimumAmount    decimal.Decimal
	MaximumAmount    decimal.Decimal
	SendConfirmation bool
	AllowedIPs       []string
	StoreEmail       string

	raw map[string]string
}

// NewSettings types the raw key/value pairs. Unparsable amounts count as zero.
func NewSettings(raw map[string]string) *Settings {
	return &Settings{
		SiteNumber:       raw[SettingSiteNumber],
		Rank:             raw[SettingRank],
		InternalID:       raw[SettingInternalID],
		PrivateKey:       raw[SettingPrivateKey],
		PlatformURL:      raw[SettingPlatformURL],
		PlatformTestURL:  raw[SettingPlatformTestURL],
		CancelURL:        raw[SettingCancelURL],
		SuccessURL:       raw[SettingSuccessURL],
		RefusedURL:       raw[SettingRefusedURL],
		IPNURL:           raw[SettingIPNURL],
		Mode:             raw[SettingMode],
		MinimumAmount:    parseAmount(raw[SettingMinimumAmount]),
		MaximumAmount:    parseAmount(raw[SettingMaximumAmount]),
		SendConfirmation: cast.ToBool(strings.TrimSpace(raw[SettingSendConfirmation])),
		AllowedIPs:       splitIPList(raw[SettingAllowedIPList]),
		StoreEmail:       raw[SettingStoreEmail],
		raw:              raw,
	}
}

// ActivePlatformURL picks the test platform in TEST mode.
func (s *Settings) ActivePlatformURL() string {
	if s.Mode == ModeTest {
		return s.PlatformTestURL
	}
	return s.PlatformURL
}

// MissingKeys returns the module keys that are blank.
func (s *Settings) MissingKeys() []string {
	var missing []string
	for _, key := range ModuleSettingKeys {
		if strings.TrimSpace(s.raw[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func (s *Settings) Completed() bool {
	return len(s.MissingKeys()) == 0
}

// Masked returns the module keys with the private key hidden.
func (s *Settings) Masked() map[string]string {
	out := make(map[string]string, len(ModuleSettingKeys))
	for _, key := range ModuleSettingKeys {
		value := s.raw[key]
		if key == SettingPrivateKey && value != "" {
			value = maskedSecret
		}
		out[key] = value
	}
	return out
}

func parseAmount(value string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.NewFromFloat(cast.ToFloat64(strings.TrimSpace(value)))
	}
	return amount
}

func splitIPList(value string) []string {
	if value == "" {
		return nil
	}
	lines := strings.Split(value, "\n")
	ips := make([]string, 0, len(lines))
	for _, line := range lines {
		ips = append(ips, strings.TrimSpace(line))
	}
	return ips
}
