package create_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetAll(ctx context.Context) ([]*domain.Session, error)
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// Catalog каталог пакетов
type Catalog interface {
	DefaultPeriodForPackage(name string) domain.Period
}

// PackageSelector выбор активных пакетов клиента
type PackageSelector interface {
	ActivePackages(client *domain.Client, sessions []*domain.Session, today time.Time) []*domain.Package
}

// Engine проверка, что сессия помещается во время начала
type Engine interface {
	CanStartAt(date time.Time, at string, durationMinutes int, sessions []*domain.Session) bool
}

// TransactionManager интерфейс для сериализации составных операций записи
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector метрики создания сессий
type MetricsCollector interface {
	IncSessionTransition(transition string)
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
