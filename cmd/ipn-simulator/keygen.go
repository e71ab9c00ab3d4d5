package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	var (
		privatePath string
		publicPath  string
		bits        int
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a platform key pair, the public half goes to PAYBOX_PUBLIC_KEY_PATH",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := rsa.GenerateKey(rand.Reader, bits)
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}

			der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
			if err != nil {
				return fmt.Errorf("marshal public key: %w", err)
			}

			private := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
			if err = os.WriteFile(privatePath, private, 0o600); err != nil {
				return fmt.Errorf("write private key: %w", err)
			}

			public := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
			if err = os.WriteFile(publicPath, public, 0o644); err != nil { //nolint:gosec
				return fmt.Errorf("write public key: %w", err)
			}

			cmd.Printf("private key: %s\npublic key:  %s\n", privatePath, publicPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&privatePath, "private", "./config/platform-private-key.pem", "Private key output path")
	cmd.Flags().StringVar(&publicPath, "public", "./config/paybox-public-key.pem", "Public key output path")
	cmd.Flags().IntVar(&bits, "bits", 2048, "RSA modulus size")

	return cmd
}
