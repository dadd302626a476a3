package sessions

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetAll(ctx context.Context) ([]*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, filter domain.SessionsFilter) ([]*domain.Session, error)
	Update(ctx context.Context, id string, fn func(s *domain.Session) error) (*domain.Session, error)
	Delete(ctx context.Context, id string) (*domain.Session, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, id string, fn func(c *domain.Client) error) (*domain.Client, error)
}

// Numberer нумерация сессий пакета
type Numberer interface {
	Label(sessionID string, client *domain.Client, sessions []*domain.Session) string
}

// MetricsCollector метрики переходов статусов
type MetricsCollector interface {
	IncSessionTransition(transition string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
