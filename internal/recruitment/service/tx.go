package service

import (
	"context"
	"sync"
	"time"

	dErrors "apply/pkg/domain-errors"
)

// defaultTxTimeout bounds an in-memory transaction.
const defaultTxTimeout = 5 * time.Second

// lockTx serializes recruitment administration when stores live in memory.
// Admin writes are rare, so one lock is enough. The lock may be shared with
// the application form transaction, which holds it for reading while it
// validates answers against a catalog.
type lockTx struct {
	mu *sync.RWMutex
}

func (t *lockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTxTimeout)
		defer cancel()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx)
}
