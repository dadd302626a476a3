package add_package

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/clients/models"
)

type ClientService interface {
	AddPackage(ctx context.Context, clientID string, req *models.AddPackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
