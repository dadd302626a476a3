package get_session_number

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/sessions/models"
)

type SessionService interface {
	Number(ctx context.Context, id string) (*models.NumberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
