package entries

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// EntryRepository интерфейс репозитория ручных записей
type EntryRepository interface {
	GetAll(ctx context.Context) ([]*domain.ManualEntry, error)
	Create(ctx context.Context, entry *domain.ManualEntry) (*domain.ManualEntry, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
