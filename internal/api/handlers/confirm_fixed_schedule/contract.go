package confirm_fixed_schedule

import (
	"context"

	confirmFixedSchedule "github.com/m04kA/SMC-StudioService/internal/usecase/confirm_fixed_schedule"
)

type ConfirmFixedScheduleUseCase interface {
	Execute(ctx context.Context, req *confirmFixedSchedule.Request) (*confirmFixedSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
