package add_manual_entry

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/entries/models"
)

type EntryService interface {
	Add(ctx context.Context, req *models.AddEntryRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
