package get_valid_periods

import (
	"context"

	getValidPeriods "github.com/m04kA/SMC-StudioService/internal/usecase/get_valid_periods"
)

type GetValidPeriodsUseCase interface {
	Execute(ctx context.Context, req *getValidPeriods.Request) (*getValidPeriods.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
