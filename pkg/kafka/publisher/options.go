package publisher

import (
	"errors"
	"time"
)

type Option func(*Publisher)

func MaxAttempts(count int) Option {
	return func(p *Publisher) {
		p.maxAttempts = count
	}
}

func BaseRetryDelay(delay time.Duration) Option {
	return func(p *Publisher) {
		p.baseRetryDelay = delay
	}
}

func MaxRetryDelay(delay time.Duration) Option {
	return func(p *Publisher) {
		p.maxRetryDelay = delay
	}
}

func (p *Publisher) validate() error {
	if p.maxAttempts <= 0 {
		return errors.New("invalid maxAttempts: must be > 0")
	}

	if p.baseRetryDelay <= 0 {
		return errors.New("invalid baseRetryDelay: must be > 0")
	}

	if p.maxRetryDelay <= 0 {
		return errors.New("invalid maxRetryDelay: must be > 0")
	}

	if p.baseRetryDelay > p.maxRetryDelay {
		return errors.New("baseRetryDelay cannot exceed maxRetryDelay")
	}
	return nil
}
