package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	_maxCurrencyListRedirects = 5
	_currencyFilePerm         = 0o644
	_currencyDirPerm          = 0o755
)

// CurrencyListClient downloads the ISO 4217 code list.
type CurrencyListClient struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
}

func NewCurrencyListClient(url string, timeout time.Duration) *CurrencyListClient {
	return &CurrencyListClient{
		client: &fasthttp.Client{
			Name:                "paybox-service",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxConnWaitTimeout:  timeout,
			MaxIdleConnDuration: time.Minute,
		},
		url:     url,
		timeout: timeout,
	}
}

// Fetch bounds the whole download, redirects included, by the earlier of the
// ctx deadline and the client timeout.
func (cl *CurrencyListClient) Fetch(ctx context.Context) ([]byte, error) {
	const op = "repository.currency.Fetch"

	deadline := time.Now().Add(cl.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(cl.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/xml, text/xml")

	for redirects := 0; ; redirects++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := cl.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("%s: request %s: %w", op, req.URI().String(), err)
		}

		if !isRedirect(resp.StatusCode()) {
			break
		}
		if redirects == _maxCurrencyListRedirects {
			return nil, fmt.Errorf("%s: too many redirects from %s", op, cl.url)
		}

		location := resp.Header.Peek(fasthttp.HeaderLocation)
		if len(location) == 0 {
			return nil, fmt.Errorf("%s: redirect without location from %s", op, req.URI().String())
		}
		req.URI().UpdateBytes(location)
		resp.Reset()
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %d from %s", op, resp.StatusCode(), cl.url)
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	return append([]byte(nil), body...), nil
}

func isRedirect(status int) bool {
	switch status {
	case fasthttp.StatusMovedPermanently, fasthttp.StatusFound, fasthttp.StatusSeeOther,
		fasthttp.StatusTemporaryRedirect, fasthttp.StatusPermanentRedirect:
		return true
	}
	return false
}

// CurrencyFileStore keeps the last downloaded code list on disk.
type CurrencyFileStore struct {
	path string
}

func NewCurrencyFileStore(path string) *CurrencyFileStore {
	return &CurrencyFileStore{path: path}
}

func (fs *CurrencyFileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, fmt.Errorf("repository.currency.Load: %w", err)
	}
	return data, nil
}

// Save replaces the stored copy atomically so readers never see a partial file.
func (fs *CurrencyFileStore) Save(data []byte) error {
	const op = "repository.currency.Save"

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, _currencyDirPerm); err != nil {
		return fmt.Errorf("%s: create dir: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fs.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: create temp file: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: write: %w", op, err)
	}
	if err = tmp.Chmod(_currencyFilePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: chmod: %w", op, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: close: %w", op, err)
	}

	if err = os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("%s: rename: %w", op, err)
	}

	return nil
}
