package workers

import (
	"context"
	"time"

	"tekfix_jobboard/internal/logger"
)

// Sweeper - то, что умеет чистить себя от устаревших записей
type Sweeper interface {
	Sweep() int
}

// LimiterWorker периодически чистит лимитеры входа, чтобы map по IP не рос бесконечно
type LimiterWorker struct {
	sweeper  Sweeper
	interval time.Duration
}

func NewLimiterWorker(sweeper Sweeper, interval time.Duration) *LimiterWorker {
	return &LimiterWorker{sweeper: sweeper, interval: interval}
}

// Start запускает фоновую очистку до отмены ctx
func (w *LimiterWorker) Start(ctx context.Context) {
	go w.sweepLimiters(ctx)
}

func (w *LimiterWorker) sweepLimiters(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Limiter worker stopped")
			return
		case <-ticker.C:
			if removed := w.sweeper.Sweep(); removed > 0 {
				logger.Debug("Swept idle rate limiters", "removed", removed)
			}
		}
	}
}
