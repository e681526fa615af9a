package services

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"tekfix_jobboard/internal/logger"
)

// Latency - искусственные задержки mock-бэкенда
type Latency struct {
	Auth  time.Duration
	Users time.Duration
	Jobs  time.Duration
}

// simulateLatency ждет d или отмены ctx и пишет вызов в лог.
// После срабатывания таймера операция выполняется до конца.
func simulateLatency(ctx context.Context, d time.Duration, service, operation string) error {
	err := wait(ctx, d)
	logger.ServiceLog(service, operation, d, err)
	return err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// idGenerator выдает id из текущего времени в миллисекундах.
// Два вызова в одну миллисекунду получают разные, возрастающие id.
type idGenerator struct {
	last atomic.Int64
	now  func() time.Time
}

func newIDGenerator(now func() time.Time) *idGenerator {
	return &idGenerator{now: now}
}

func (g *idGenerator) Next() string {
	for {
		prev := g.last.Load()
		next := g.now().UnixMilli()
		if next <= prev {
			next = prev + 1
		}
		if g.last.CompareAndSwap(prev, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

// laterThan возвращает now, но строго позже prev
func laterThan(now, prev time.Time) time.Time {
	if !now.After(prev) {
		return prev.Add(time.Microsecond)
	}
	return now
}
