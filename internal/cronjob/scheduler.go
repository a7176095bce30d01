package cronjob

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Purger hard-deletes projects soft-deleted before a cutoff.
type Purger interface {
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

// Scheduler runs the purge job on a cron schedule with seconds,
// e.g. "0 0 0 * * *" for nightly at midnight.
type Scheduler struct {
	purger    Purger
	schedule  string
	retention time.Duration
	logger    *zap.Logger
	now       func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
}

func NewScheduler(purger Purger, schedule string, retention time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Start registers the purge job and starts the cron runner.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}

	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("purge failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", s.schedule, err)
	}

	c.Start()
	s.cron = c
	s.logger.Info("cron scheduler started", zap.String("schedule", s.schedule), zap.Duration("retention", s.retention))
	return nil
}

// Stop halts the runner and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c == nil {
		return
	}

	select {
	case <-c.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce purges projects deleted more than the retention period ago.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)
	n, err := s.purger.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.logger.Info("purged deleted projects", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	return n, nil
}
