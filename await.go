package traceix

import (
	"context"
	stderrors "errors"

	"github.com/cenkalti/backoff/v4"
)

// StatusFunc inspects a status payload and reports whether the job has
// finished. Returning an error stops the poll loop immediately.
type StatusFunc func(v any) (bool, error)

// ErrStatusPending is returned when polling gives up (backoff exhausted)
// while the job is still pending.
var ErrStatusPending = stderrors.New("traceix: job still pending")

// newStatusBackOff is a hook for tests to shorten poll intervals.
var newStatusBackOff = func() backoff.BackOff {
	return backoff.NewExponentialBackOff()
}

// AwaitStatus polls CheckStatus for the given job identifier under
// exponential backoff until done reports the job finished, done returns an
// error, or ctx ends. It returns the payload done accepted. If the backoff
// schedule is exhausted first, AwaitStatus returns ErrStatusPending.
//
// Backoff only paces polls of a still-pending job. A failed exchange is
// returned immediately, never retried, matching the synchronous
// operations.
func (c *Client) AwaitStatus(ctx context.Context, uuid string, done StatusFunc) (any, error) {
	var result any
	poll := func() error {
		v, err := c.CheckStatus(ctx, uuid)
		if err != nil {
			return backoff.Permanent(err)
		}
		finished, err := done(v)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !finished {
			return ErrStatusPending
		}
		result = v
		return nil
	}
	if err := backoff.Retry(poll, backoff.WithContext(newStatusBackOff(), ctx)); err != nil {
		return nil, err
	}
	return result, nil
}
