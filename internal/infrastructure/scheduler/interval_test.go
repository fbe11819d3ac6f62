package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalSchedulerRunsImmediatelyAndRepeats(t *testing.T) {
	t.Parallel()

	var runs atomic.Int32
	s := NewIntervalScheduler(10 * time.Millisecond)
	require.NoError(t, s.Start(context.Background(), func(time.Time) { runs.Add(1) }))
	require.NoError(t, s.Start(context.Background(), func(time.Time) { runs.Add(100) }))

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
	assert.Less(t, after, int32(100))
}

func TestIntervalSchedulerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	s := NewIntervalScheduler(time.Hour)
	require.NoError(t, s.Start(ctx, func(time.Time) {}))

	done := s.Done()
	require.NotNil(t, done)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not exit after cancel")
	}
}

func TestIntervalSchedulerDisabled(t *testing.T) {
	t.Parallel()

	s := NewIntervalScheduler(0)
	require.NoError(t, s.Start(context.Background(), func(time.Time) { t.Error("job must not run") }))
	assert.Nil(t, s.Done())
	assert.NoError(t, s.Stop(context.Background()))
}
