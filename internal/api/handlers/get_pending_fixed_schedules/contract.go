package get_pending_fixed_schedules

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/fixedschedules/models"
)

type ScheduleService interface {
	Pending(ctx context.Context) ([]*models.PendingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
