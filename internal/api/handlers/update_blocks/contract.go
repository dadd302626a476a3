package update_blocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/service/blocks"
)

type BlocksService interface {
	Replace(ctx context.Context, date time.Time, professional string, intervals []blocks.Interval) ([]domain.BlockedInterval, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
