package service_test

import (
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"paybox/internal/entity"
	"paybox/internal/service"

	"github.com/stretchr/testify/require"
)

func signedFixture(t *testing.T) *entity.Notification {
	t.Helper()

	n := &entity.Notification{
		Amount:      "1235",
		Ref:         "0000000042",
		Auto:        "XXXXXX",
		Transaction: "615273845",
		ErrorCode:   entity.SuccessCode,
	}
	signNotification(t, n)
	return n
}

func TestVerifyNotification(t *testing.T) {
	key := &platformKey().PublicKey

	testCases := []struct {
		desc   string
		mutate func(n *entity.Notification)
		valid  bool
	}{
		{desc: "Untouched", mutate: func(*entity.Notification) {}, valid: true},
		{desc: "URLSafeSignature", mutate: func(n *entity.Notification) {
			raw, _ := base64.StdEncoding.DecodeString(n.Sign)
			n.Sign = base64.URLEncoding.EncodeToString(raw)
		}, valid: true},
		{desc: "AmountChanged", mutate: func(n *entity.Notification) { n.Amount = "1236" }},
		{desc: "RefChanged", mutate: func(n *entity.Notification) { n.Ref = "0000000043" }},
		{desc: "AutoChanged", mutate: func(n *entity.Notification) { n.Auto = "XXXXXY" }},
		{desc: "TransactionChanged", mutate: func(n *entity.Notification) { n.Transaction = "615273846" }},
		{desc: "ErrorCodeChanged", mutate: func(n *entity.Notification) { n.ErrorCode = "00001" }},
		{desc: "SignatureByteFlipped", mutate: func(n *entity.Notification) {
			raw, _ := base64.StdEncoding.DecodeString(n.Sign)
			raw[len(raw)/2] ^= 0x01
			n.Sign = base64.StdEncoding.EncodeToString(raw)
		}},
		{desc: "SignatureTruncated", mutate: func(n *entity.Notification) {
			raw, _ := base64.StdEncoding.DecodeString(n.Sign)
			n.Sign = base64.StdEncoding.EncodeToString(raw[:len(raw)-1])
		}},
		{desc: "SignatureNotBase64", mutate: func(n *entity.Notification) { n.Sign = "%%%" }},
		{desc: "SignatureMissing", mutate: func(n *entity.Notification) { n.Sign = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			n := signedFixture(t)
			tc.mutate(n)

			err := service.VerifyNotification(key, n)
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, entity.ErrSignatureInvalid)
		})
	}
}

func TestVerifyNotification_EveryByteOfSignedString(t *testing.T) {
	t.Parallel()

	key := &platformKey().PublicKey
	base := signedFixture(t)

	fields := []*string{&base.Amount, &base.Ref, &base.Auto, &base.Transaction, &base.ErrorCode}
	for _, field := range fields {
		original := *field
		for i := range len(original) {
			mutated := []byte(original)
			mutated[i] ^= 0x01
			*field = string(mutated)

			require.ErrorIs(t, service.VerifyNotification(key, base), entity.ErrSignatureInvalid)
		}
		*field = original
	}

	require.NoError(t, service.VerifyNotification(key, base))
}

func TestParsePublicKey(t *testing.T) {
	priv := platformKey()

	pkixDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "paybox test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	cert, err := x509.CreateCertificate(rand.Reader, template, template, &priv.PublicKey, priv)
	require.NoError(t, err)

	testCases := []struct {
		desc  string
		pem   []byte
		valid bool
	}{
		{desc: "PKIX", pem: pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pkixDER}), valid: true},
		{
			desc:  "PKCS1",
			pem:   pem.EncodeToMemory(&pem.Block{Type: "RSA PUBLIC KEY", Bytes: x509.MarshalPKCS1PublicKey(&priv.PublicKey)}),
			valid: true,
		},
		{desc: "Certificate", pem: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert}), valid: true},
		{desc: "NotPEM", pem: []byte("clef publique")},
		{desc: "UnsupportedBlock", pem: pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1}})},
		{desc: "CorruptKey", pem: pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte{1, 2, 3}})},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			key, err := service.ParsePublicKey(tc.pem)
			if !tc.valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, priv.PublicKey.Equal(key))
		})
	}
}

func TestFilePublicKeySource(t *testing.T) {
	t.Parallel()

	key, err := service.NewFilePublicKeySource(writePublicKey(t)).PublicKey()
	require.NoError(t, err)
	require.True(t, platformKey().PublicKey.Equal(key))

	missing := filepath.Join(t.TempDir(), "missing.pem")
	_, err = service.NewFilePublicKeySource(missing).PublicKey()
	require.ErrorIs(t, err, entity.ErrKeyUnavailable)

	garbage := filepath.Join(t.TempDir(), "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("garbage"), 0o600))
	_, err = service.NewFilePublicKeySource(garbage).PublicKey()
	require.ErrorIs(t, err, entity.ErrKeyUnavailable)
}
