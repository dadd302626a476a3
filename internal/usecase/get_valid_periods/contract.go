package get_valid_periods

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий
type SessionRepository interface {
	GetByDateAndProfessional(ctx context.Context, date, professional string) ([]*domain.Session, error)
}

// Engine расчет допустимых длительностей
type Engine interface {
	ValidPeriods(date time.Time, at string, sessions []*domain.Session) []domain.Period
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
