package warmup

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/transit-graph/internal/config"
	"github.com/transit-graph/internal/domain"
	"github.com/transit-graph/internal/domain/repository"
	"github.com/transit-graph/internal/worker"
	"go.uber.org/zap"
)

// RealtimeWarmer периодически запрашивает табло заданных остановок, чтобы
// ответы для них лежали в кэше к приходу клиентов. Интервал должен быть
// меньше TTL кэша.
type RealtimeWarmer struct {
	*worker.BaseWorker
	transitRepo repository.TransitRepository
	stopIDs     []int
	interval    time.Duration
	concurrency int
	logger      *zap.Logger
}

func NewRealtimeWarmer(
	transitRepo repository.TransitRepository,
	cfg *config.WarmupConfig,
	logger *zap.Logger,
) *RealtimeWarmer {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &RealtimeWarmer{
		BaseWorker:  worker.NewBaseWorker("realtime-warmer"),
		transitRepo: transitRepo,
		stopIDs:     cfg.StopIDs,
		interval:    cfg.Interval,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (w *RealtimeWarmer) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.Warm(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-w.StopChan():
			return nil
		case <-ticker.C:
		}
	}
}

// Warm - один проход по всем остановкам. Возвращает число успешно обновленных.
func (w *RealtimeWarmer) Warm(ctx context.Context) int {
	start := time.Now()
	results := make([]bool, len(w.stopIDs))

	p := pool.New().WithMaxGoroutines(w.concurrency)
	for i, id := range w.stopIDs {
		p.Go(func() {
			_, err := w.transitRepo.GetStopVisits(ctx, id, domain.VisitFilter{})
			if err != nil {
				w.logger.Warn("Failed to warm stop visits", zap.Int("stop_id", id), zap.Error(err))
				return
			}
			results[i] = true
		})
	}
	p.Wait()

	warmed := 0
	for _, ok := range results {
		if ok {
			warmed++
		}
	}
	w.logger.Debug("Realtime warm-up finished",
		zap.Int("stops", len(w.stopIDs)),
		zap.Int("warmed", warmed),
		zap.Duration("took", time.Since(start)))
	return warmed
}
