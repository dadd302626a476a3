package get_blocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

type BlocksService interface {
	Get(ctx context.Context, date time.Time, professional string) ([]domain.BlockedInterval, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
