package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Professional string        // ID профессионала
	Date         time.Time     // Дата (без времени)
	Period       domain.Period // Длительность сессии ("1h", "30min", ...)
}

// Response модель ответа с доступными слотами
type Response struct {
	Date            time.Time
	Professional    string
	Period          domain.Period
	DurationMinutes int
	Slots           []types.TimeString // Времена начала по возрастанию
}
