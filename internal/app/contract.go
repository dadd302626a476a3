package app

import (
	"context"
	"time"
)

// Pruner удаляет записи с датой раньше cutoff ("2006-01-02")
type Pruner interface {
	DeleteBefore(ctx context.Context, cutoff string) (int, error)
}

// UsageReconciler пересчитывает кэш использования пакетов
type UsageReconciler interface {
	ReconcileUsage(ctx context.Context) (int, error)
}

// LegacyImporter переносит старые разделы сессий в общую коллекцию
type LegacyImporter interface {
	ImportLegacyPartitions(ctx context.Context) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
