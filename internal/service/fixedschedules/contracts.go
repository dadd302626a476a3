package fixedschedules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблонов
type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]*domain.FixedSchedule, error)
	Create(ctx context.Context, schedule *domain.FixedSchedule) (*domain.FixedSchedule, error)
	Update(ctx context.Context, id string, fn func(f *domain.FixedSchedule) error) (*domain.FixedSchedule, error)
	Delete(ctx context.Context, id string) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetAll(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetAll(ctx context.Context) ([]*domain.Session, error)
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
