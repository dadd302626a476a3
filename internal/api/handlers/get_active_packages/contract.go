package get_active_packages

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/clients/models"
)

type ClientService interface {
	ActivePackages(ctx context.Context, clientID string) ([]*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
