package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type Option func(*manager)

func MaxAttempts(attempts int) Option {
	return func(m *manager) {
		m.maxAttempts = attempts
	}
}

func BaseRetryDelay(delay time.Duration) Option {
	return func(m *manager) {
		m.baseRetryDelay = delay
	}
}

func MaxRetryDelay(delay time.Duration) Option {
	return func(m *manager) {
		m.maxRetryDelay = delay
	}
}

// IsolationLevel accepts the SQL spelling, e.g. "read committed" or "serializable".
func IsolationLevel(level string) Option {
	return func(m *manager) {
		m.isoLevel = pgx.TxIsoLevel(strings.ToLower(strings.TrimSpace(level)))
	}
}

func (m *manager) validate() error {
	if m.maxAttempts <= 0 {
		return errors.New("invalid maxAttempts: must be > 0")
	}

	if m.baseRetryDelay <= 0 {
		return errors.New("invalid base retry delay: must be > 0")
	}

	if m.maxRetryDelay <= 0 {
		return errors.New("invalid max retry delay: must be > 0")
	}

	if m.baseRetryDelay > m.maxRetryDelay {
		return errors.New("baseRetryDelay cannot exceed maxRetryDelay")
	}

	switch m.isoLevel {
	case pgx.ReadCommitted, pgx.RepeatableRead, pgx.Serializable:
	default:
		return fmt.Errorf("unsupported isolation level %q", m.isoLevel)
	}
	return nil
}
