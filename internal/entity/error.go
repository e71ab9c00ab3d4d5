package entity

import (
	"errors"
)

var (
	ErrDataNotFound     = errors.New("data not found")
	ErrConflictingData  = errors.New("data conflicts with existing data in unique column")
	ErrInvalidData      = errors.New("invalid data")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and -config flag not provided")

	ErrConfiguration            = errors.New("paybox module is not properly configured")
	ErrCurrencyResolution       = errors.New("failed to get ISO 4217 data for currency")
	ErrHashAlgorithmUnavailable = errors.New("failed to find a suitable hash algorithm")
	ErrKeyUnavailable           = errors.New("paybox public key is unavailable")
	ErrSignatureInvalid         = errors.New("request parameters signature verification failed")
)
