package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) RefreshOpenGauge(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestRunRefreshesImmediatelyAndStopsWithContext(t *testing.T) {
	refresher := &countingRefresher{err: errors.New("store unavailable")}
	s := New(refresher, "@every 1h", slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return refresher.calls.Load() >= 1 }, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}

func TestRunRejectsInvalidSpec(t *testing.T) {
	s := New(&countingRefresher{}, "not a cron spec", slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, s.Run(context.Background()))
}
