// Package scheduler periodically refreshes the open recruitment gauge so
// dashboards see windows open and close without waiting for traffic.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"apply/pkg/requestcontext"
)

// GaugeRefresher is implemented by the recruitment service.
type GaugeRefresher interface {
	RefreshOpenGauge(ctx context.Context) error
}

// Scheduler wraps robfig/cron and owns the refresh job.
type Scheduler struct {
	cron      *cron.Cron
	refresher GaugeRefresher
	spec      string
	logger    *slog.Logger
}

// New creates a Scheduler firing on spec, e.g. "@every 1m".
func New(refresher GaugeRefresher, spec string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		spec:      spec,
		logger:    logger,
	}
}

// Run registers the job, refreshes once immediately and blocks until ctx is
// done. Running jobs finish before Run returns.
func (s *Scheduler) Run(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.refresh(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	s.logger.InfoContext(ctx, "scheduler started", "spec", s.spec)

	s.refresh(ctx)

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.InfoContext(context.Background(), "scheduler stopped")
	return nil
}

func (s *Scheduler) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	jobCtx := requestcontext.WithTime(ctx, time.Now().UTC())
	if err := s.refresher.RefreshOpenGauge(jobCtx); err != nil {
		s.logger.WarnContext(ctx, "open recruitment refresh failed", "error", err)
	}
}
