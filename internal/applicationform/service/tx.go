package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	id "apply/pkg/domain"
	dErrors "apply/pkg/domain-errors"
)

// StoreTx runs fn atomically. Implementations put their transaction handle in
// the context passed to fn.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// numFormShards spreads in-memory form transactions across independent locks
// keyed by applicant. All forms of one applicant share a shard, so the
// (applicant, recruitment) check-then-create sequence is serialized.
const numFormShards = 128

const defaultFormTxTimeout = 5 * time.Second

// shardedFormTx also holds catalog, when set, for reading so recruitment
// items cannot change between the catalog read and the form write.
type shardedFormTx struct {
	shards  [numFormShards]sync.Mutex
	catalog *sync.RWMutex
	timeout time.Duration
}

func (t *shardedFormTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultFormTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	shard := t.selectShard(ctx)
	t.shards[shard].Lock()
	defer t.shards[shard].Unlock()
	if t.catalog != nil {
		t.catalog.RLock()
		defer t.catalog.RUnlock()
	}

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx)
}

// selectShard picks the applicant's shard, or shard 0 when none is set.
func (t *shardedFormTx) selectShard(ctx context.Context) int {
	applicantID, ok := ctx.Value(txApplicantKeyCtx).(id.ApplicantID)
	if !ok || applicantID.IsNil() {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(applicantID.String()))
	return int(h.Sum32() % numFormShards)
}

type txApplicantKey struct{}

var txApplicantKeyCtx = txApplicantKey{}

func withTxApplicant(ctx context.Context, applicantID id.ApplicantID) context.Context {
	return context.WithValue(ctx, txApplicantKeyCtx, applicantID)
}
