package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// shutdownTimeout - максимальное время ожидания завершения воркеров
const shutdownTimeout = 30 * time.Second

// Manager запускает зарегистрированные воркеры и останавливает их вместе
type Manager struct {
	workers []Worker
	logger  *zap.Logger
	wg      conc.WaitGroup
	mu      sync.Mutex
}

// NewManager создает новый Manager
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Register регистрирует воркер
func (m *Manager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает все воркеры в отдельных горутинах и сразу возвращается
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	for _, w := range workers {
		m.wg.Go(func() {
			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			if err := w.Start(ctx); err != nil {
				m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
			}
		})
	}
}

// Stop сигнализирует воркерам и ждет их завершения не дольше shutdownTimeout
func (m *Manager) Stop() error {
	return m.stopWithin(shutdownTimeout)
}

func (m *Manager) stopWithin(timeout time.Duration) error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("workers shutdown timed out after %v", timeout)
	}
}
