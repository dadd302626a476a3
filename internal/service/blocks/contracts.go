package blocks

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// BlocksRepository интерфейс репозитория блокировок
type BlocksRepository interface {
	Get(ctx context.Context, date, professional string) ([]domain.BlockedInterval, error)
	Replace(ctx context.Context, date, professional string, intervals []domain.BlockedInterval) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
