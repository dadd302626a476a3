package list_sessions

import (
	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/sessions/models"
)

// ListSessionsQuery query параметры списка сессий
type ListSessionsQuery struct {
	StartDate    string `schema:"startDate"` // "2025-03-01"
	EndDate      string `schema:"endDate"`
	Professional string `schema:"professional"`
	ClientID     string `schema:"clientId"`
	Status       string `schema:"status"`
}

// ToServiceRequest конвертирует query параметры в запрос сервиса
func (q *ListSessionsQuery) ToServiceRequest() (*models.ListSessionsRequest, error) {
	start, err := handlers.ParseOptionalDate(q.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseOptionalDate(q.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.ListSessionsRequest{
		StartDate:    start,
		EndDate:      end,
		Professional: handlers.OptionalString(q.Professional),
		ClientID:     handlers.OptionalString(q.ClientID),
		Status:       handlers.OptionalString(q.Status),
	}, nil
}
