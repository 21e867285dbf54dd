package token

import (
	"fmt"
	"time"
)

type Option func(*Issuer) error

// WithClock replaces the wall clock used to compute the exp claim.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) error {
		if now == nil {
			return fmt.Errorf("%w: nil clock", ErrInvalidOption)
		}
		i.now = now
		return nil
	}
}

func WithValidity(d time.Duration) Option {
	return func(i *Issuer) error {
		if d <= 0 {
			return fmt.Errorf("%w: validity must be positive, got %s", ErrInvalidOption, d)
		}
		i.validity = d
		return nil
	}
}

func WithAudience(aud string) Option {
	return func(i *Issuer) error {
		if aud == "" {
			return fmt.Errorf("%w: empty audience", ErrInvalidOption)
		}
		i.audience = aud
		return nil
	}
}
