package clients

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/numbering"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetAll(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, fn func(c *domain.Client) error) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetAll(ctx context.Context) ([]*domain.Session, error)
}

// Catalog каталог пакетов
type Catalog interface {
	Has(name string) bool
}

// UsageCalculator расчет использования пакетов
type UsageCalculator interface {
	Usage(clientID string, pkg *domain.Package, sessions []*domain.Session, today time.Time) numbering.Usage
	ActivePackages(client *domain.Client, sessions []*domain.Session, today time.Time) []*domain.Package
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
