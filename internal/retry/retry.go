// Package retry provides a bounded retry-until-stable policy for reading
// aggregates out of an eventually consistent store.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy re-reads a value until two consecutive reads agree, waiting a
// growing interval between attempts. It is a convergence heuristic, not a
// transactional guarantee: when attempts run out, the last observed value
// wins.
type Policy struct {
	// MaxRetries bounds the re-reads after the first one.
	MaxRetries uint64
	// InitialInterval is the first wait between reads; subsequent waits grow
	// exponentially.
	InitialInterval time.Duration
}

// DefaultPolicy mirrors the portal's historical recount loop: up to five
// retries starting at 200ms.
func DefaultPolicy() Policy {
	return Policy{MaxRetries: 5, InitialInterval: 200 * time.Millisecond}
}

var errNotStable = errors.New("value not yet stable")

// StableCount calls count until two consecutive results agree. Errors from
// count abort immediately. If the value never stabilizes within the retry
// budget, the last observed value is returned with a nil error.
func (p Policy) StableCount(ctx context.Context, count func(context.Context) (int64, error)) (int64, error) {
	interval := p.InitialInterval
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}

	prev := int64(-1)
	var last int64
	op := func() error {
		n, err := count(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		last = n
		if n == prev {
			return nil
		}
		prev = n
		return errNotStable
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.RandomizationFactor = 0

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx))
	if err != nil {
		if errors.Is(err, errNotStable) {
			// Budget exhausted without stabilizing; use what we saw last.
			return last, nil
		}
		return 0, err
	}
	return last, nil
}
