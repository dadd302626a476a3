package list_manual_entries

import (
	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/entries/models"
)

// ListEntriesQuery query параметры списка записей
type ListEntriesQuery struct {
	StartDate string `schema:"startDate"`
	EndDate   string `schema:"endDate"`
}

// ToServiceRequest конвертирует query параметры в запрос сервиса
func (q *ListEntriesQuery) ToServiceRequest() (*models.ListEntriesRequest, error) {
	start, err := handlers.ParseOptionalDate(q.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseOptionalDate(q.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.ListEntriesRequest{StartDate: start, EndDate: end}, nil
}
