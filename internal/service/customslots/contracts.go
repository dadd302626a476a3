package customslots

import "context"

// SlotsRepository интерфейс репозитория дополнительных слотов
type SlotsRepository interface {
	Get(ctx context.Context, date, professional string) ([]string, error)
	Set(ctx context.Context, date, professional string, slots []string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
