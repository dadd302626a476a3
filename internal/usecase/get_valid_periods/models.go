package get_valid_periods

import (
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Request модель запроса допустимых длительностей для времени начала
type Request struct {
	Professional string
	Date         time.Time
	Time         types.TimeString
}

// Response допустимые длительности в порядке возрастания
type Response struct {
	Date         time.Time
	Time         types.TimeString
	Professional string
	Periods      []domain.Period
}
