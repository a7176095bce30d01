package cronjob

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePurger struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (f *fakePurger) PurgeDeleted(_ context.Context, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.cutoffs = append(f.cutoffs, before)
	return 2, nil
}

func (f *fakePurger) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestRunOnce(t *testing.T) {
	p := &fakePurger{}
	s := NewScheduler(p, "0 0 0 * * *", 48*time.Hour, zap.NewNop())
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	n, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Equal(t, []time.Time{now.Add(-48 * time.Hour)}, p.cutoffs)

	p.err = errors.New("db down")
	_, err = s.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestStartRunsJob(t *testing.T) {
	p := &fakePurger{}
	s := NewScheduler(p, "* * * * * *", time.Hour, nil)

	require.NoError(t, s.Start())
	require.NoError(t, s.Start(), "second start is a no-op")

	assert.Eventually(t, func() bool { return p.calls() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.Stop(ctx)
	s.Stop(ctx)
}

func TestStartInvalidSchedule(t *testing.T) {
	s := NewScheduler(&fakePurger{}, "every night", time.Hour, nil)
	assert.Error(t, s.Start())
}
