package cancel_session

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/sessions/models"
)

type SessionService interface {
	Cancel(ctx context.Context, id string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
