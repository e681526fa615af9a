package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"tekfix_jobboard/internal/middleware"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 1
}

func TestLimiterWorker_SweepsUntilCancelled(t *testing.T) {
	sweeper := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())

	NewLimiterWorker(sweeper, 5*time.Millisecond).Start(ctx)
	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, sweeper.calls.Load())
}

func TestLimiter_KeepsBusyBuckets(t *testing.T) {
	limiter := middleware.NewIPRateLimiter(60, 2)
	limiter.Allow("10.0.0.1")
	limiter.Allow("10.0.0.1")
	assert.Equal(t, 1, limiter.Size())

	// ведро пустое, лимитер еще нужен
	assert.Equal(t, 0, limiter.Sweep())
	assert.Equal(t, 1, limiter.Size())
}
