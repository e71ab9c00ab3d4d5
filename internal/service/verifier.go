package service

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec // the platform signs notifications with SHA-1
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"paybox/internal/entity"
)

var _ PublicKeySource = (*FilePublicKeySource)(nil)

// FilePublicKeySource reads the platform public key from a PEM file on every call.
type FilePublicKeySource struct {
	path string
}

func NewFilePublicKeySource(path string) *FilePublicKeySource {
	return &FilePublicKeySource{path: path}
}

func (s *FilePublicKeySource) Path() string {
	return s.path
}

func (s *FilePublicKeySource) PublicKey() (*rsa.PublicKey, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrKeyUnavailable, err)
	}

	key, err := ParsePublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrKeyUnavailable, err)
	}

	return key, nil
}

// ParsePublicKey accepts PKIX and PKCS#1 public keys and X.509 certificates.
func ParsePublicKey(data []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	switch block.Type {
	case "PUBLIC KEY":
		parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKIX public key: %w", err)
		}
		return asRSA(parsed)
	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse PKCS1 public key: %w", err)
		}
		return key, nil
	case "CERTIFICATE":
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse certificate: %w", err)
		}
		return asRSA(cert.PublicKey)
	default:
		return nil, fmt.Errorf("unsupported PEM block %q", block.Type)
	}
}

func asRSA(key any) (*rsa.PublicKey, error) {
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unsupported public key type %T", key)
	}
	return rsaKey, nil
}

// VerifyNotification checks sign against the string the platform signed.
func VerifyNotification(key *rsa.PublicKey, notification *entity.Notification) error {
	signature, err := decodeSignature(notification.Sign)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrSignatureInvalid, err)
	}

	digest := sha1.Sum([]byte(notification.SignedString())) //nolint:gosec
	if err = rsa.VerifyPKCS1v15(key, crypto.SHA1, digest[:], signature); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrSignatureInvalid, err)
	}

	return nil
}

func decodeSignature(sign string) ([]byte, error) {
	if sign == "" {
		return nil, errors.New("signature is empty")
	}

	signature, err := base64.StdEncoding.DecodeString(sign)
	if err == nil {
		return signature, nil
	}

	signature, urlErr := base64.URLEncoding.DecodeString(sign)
	if urlErr != nil {
		return nil, fmt.Errorf("decode signature: %w", err)
	}
	return signature, nil
}
