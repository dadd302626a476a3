package get_valid_periods

import (
	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/domain"
	getValidPeriods "github.com/m04kA/SMC-StudioService/internal/usecase/get_valid_periods"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// ValidPeriodsResponse HTTP response model
type ValidPeriodsResponse struct {
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Professional string   `json:"professional"`
	Periods      []string `json:"periods"`
}

// ToUseCaseRequest создает запрос use case; время не парсится до минут, его проверяет use case
func ToUseCaseRequest(professional, dateStr, at string) (*getValidPeriods.Request, error) {
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getValidPeriods.Request{
		Professional: professional,
		Date:         date,
		Time:         types.TimeString(at),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getValidPeriods.Response) *ValidPeriodsResponse {
	periods := make([]string, len(resp.Periods))
	for i, p := range resp.Periods {
		periods[i] = string(p)
	}
	return &ValidPeriodsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		Professional: resp.Professional,
		Periods:      periods,
	}
}
