package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/availability"
	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByDateAndProfessional(ctx context.Context, date, professional string) ([]*domain.Session, error)
}

// CustomSlotsRepository интерфейс репозитория дополнительных слотов
type CustomSlotsRepository interface {
	Get(ctx context.Context, date, professional string) ([]string, error)
}

// BlocksRepository интерфейс репозитория блокировок
type BlocksRepository interface {
	Get(ctx context.Context, date, professional string) ([]domain.BlockedInterval, error)
}

// Engine генератор доступных слотов
type Engine interface {
	AvailableSlots(in availability.Input) []types.TimeString
}

// MetricsCollector метрики генерации слотов
type MetricsCollector interface {
	ObserveSlotsGenerated(professional string, count int)
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
