package worker

import (
	"context"
	"sync"
)

// Worker - фоновая задача, живущая вместе с HTTP сервером
type Worker interface {
	// Start блокируется до отмены ctx или вызова Stop
	Start(ctx context.Context) error

	Stop() error

	Name() string
}

// BaseWorker содержит общую логику остановки для воркеров
type BaseWorker struct {
	name     string
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewBaseWorker создает новый BaseWorker
func NewBaseWorker(name string) *BaseWorker {
	return &BaseWorker{
		name:     name,
		stopChan: make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop закрывает канал остановки; повторные вызовы ничего не делают
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() { close(w.stopChan) })
	return nil
}

// StopChan возвращает канал остановки
func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}
