package confirm_fixed_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
)

// ScheduleRepository интерфейс репозитория шаблонов
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.FixedSchedule, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetAll(ctx context.Context) ([]*domain.Session, error)
}

// Catalog каталог пакетов
type Catalog interface {
	DefaultPeriodForPackage(name string) domain.Period
}

// PackageSelector выбор активных пакетов клиента
type PackageSelector interface {
	ActivePackages(client *domain.Client, sessions []*domain.Session, today time.Time) []*domain.Package
}

// SessionCreator создание сессии через общий сценарий записи
type SessionCreator interface {
	Execute(ctx context.Context, req *createSession.Request) (*createSession.Response, error)
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
