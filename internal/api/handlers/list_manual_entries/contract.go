package list_manual_entries

import (
	"context"

	"github.com/m04kA/SMC-StudioService/internal/service/entries/models"
)

type EntryService interface {
	List(ctx context.Context, req *models.ListEntriesRequest) (*models.EntryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
