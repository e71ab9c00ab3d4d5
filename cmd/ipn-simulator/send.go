package main

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"paybox/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
)

type sendOptions struct {
	target    string
	keyPath   string
	orderID   int64
	amount    int
	errorCode string
	count     int
	interval  time.Duration
	tamper    bool
	useGET    bool
	timeout   time.Duration
}

func sendCmd() *cobra.Command {
	var opts sendOptions

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Sign and deliver payment notifications to the callback endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return runSend(ctx, cmd, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.target, "url", "http://localhost:8080/paybox/callback", "Callback endpoint")
	flags.StringVar(&opts.keyPath, "key", "./config/platform-private-key.pem", "Platform private key")
	flags.Int64Var(&opts.orderID, "order", 0, "Order id, random when zero")
	flags.IntVar(&opts.amount, "amount", 0, "Amount in minor units, random when zero")
	flags.StringVar(&opts.errorCode, "error", entity.SuccessCode, "Platform response code")
	flags.IntVar(&opts.count, "count", 1, "Number of deliveries")
	flags.DurationVar(&opts.interval, "interval", time.Second, "Delay between deliveries")
	flags.BoolVar(&opts.tamper, "tamper", false, "Alter the amount after signing")
	flags.BoolVar(&opts.useGET, "get", false, "Deliver as a query string instead of a form body")
	flags.DurationVar(&opts.timeout, "timeout", 5*time.Second, "Per delivery timeout")

	return cmd
}

func runSend(ctx context.Context, cmd *cobra.Command, opts *sendOptions) error {
	key, err := loadPrivateKey(opts.keyPath)
	if err != nil {
		return err
	}

	client := &fasthttp.Client{
		ReadTimeout:  opts.timeout,
		WriteTimeout: opts.timeout,
	}

	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	for sent := 0; sent < opts.count; {
		notification, err := fakeNotification(key, opts)
		if err != nil {
			return err
		}

		status, err := deliver(client, opts, notification)
		if err != nil {
			return err
		}
		sent++
		cmd.Printf("delivered ref=%s erreur=%s status=%d\n", notification.Ref, notification.ErrorCode, status)

		if sent >= opts.count {
			break
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

func fakeNotification(key *rsa.PrivateKey, opts *sendOptions) (*entity.Notification, error) {
	orderID := opts.orderID
	if orderID == 0 {
		orderID = int64(gofakeit.Number(1, 999999))
	}
	amount := opts.amount
	if amount == 0 {
		amount = gofakeit.Number(100, 50000)
	}

	n := &entity.Notification{
		Amount:      strconv.Itoa(amount),
		Ref:         strconv.FormatInt(orderID, 10),
		Auto:        gofakeit.DigitN(6),
		Transaction: gofakeit.DigitN(8),
		ErrorCode:   opts.errorCode,
	}

	digest := sha1.Sum([]byte(n.SignedString())) //nolint:gosec
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA1, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign notification: %w", err)
	}
	n.Sign = base64.StdEncoding.EncodeToString(signature)

	if opts.tamper {
		n.Amount = strconv.Itoa(amount + 1)
	}
	return n, nil
}

func deliver(client *fasthttp.Client, opts *sendOptions, n *entity.Notification) (int, error) {
	values := url.Values{}
	values.Set("montant", n.Amount)
	values.Set("ref", n.Ref)
	values.Set("auto", n.Auto)
	values.Set("trans", n.Transaction)
	values.Set("erreur", n.ErrorCode)
	values.Set("sign", n.Sign)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	if opts.useGET {
		req.Header.SetMethod(fasthttp.MethodGet)
		req.SetRequestURI(opts.target + "?" + values.Encode())
	} else {
		req.Header.SetMethod(fasthttp.MethodPost)
		req.SetRequestURI(opts.target)
		req.Header.SetContentType("application/x-www-form-urlencoded")
		req.SetBodyString(values.Encode())
	}

	if err := client.DoTimeout(req, resp, opts.timeout); err != nil {
		return 0, fmt.Errorf("deliver notification: %w", err)
	}
	return resp.StatusCode(), nil
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("private key: no PEM block found")
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	case "PRIVATE KEY":
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("private key is not RSA")
		}
		return key, nil
	default:
		return nil, fmt.Errorf("unsupported PEM block %q", block.Type)
	}
}
