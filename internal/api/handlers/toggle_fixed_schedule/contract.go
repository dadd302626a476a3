package toggle_fixed_schedule

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/fixedschedules/models"
)

type ScheduleService interface {
	Toggle(ctx context.Context, id string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
