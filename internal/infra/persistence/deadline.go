// Package persistence holds helpers shared by the store backends.
package persistence

import (
	"context"
	"time"

	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
)

// Bound derives the context for a single store call.
func Bound(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}

// DeadlineExceeded reports whether the store call failed because its deadline passed.
func DeadlineExceeded(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}

// TimeoutError reports op as a retryable store timeout.
func TimeoutError(op string) error {
	return errors.Wrapf(domainerrors.ErrStoreTimeout, "%s timed out", op)
}
