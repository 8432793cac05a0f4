package service

import (
	"context"
	"fmt"
	"time"
)

const defaultStoreTimeout = 10 * time.Second

// storeContext bounds a single store round-trip.
func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// unavailable wraps a store failure that has no domain meaning.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
