package create_session

import (
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Request модель запроса на создание сессии
type Request struct {
	ID           string           // ID сессии (опционально, по умолчанию uuid)
	ClientID     string           // ID клиента
	Date         time.Time        // Дата сессии (без времени)
	Time         types.TimeString // Время начала ("10:00")
	Period       domain.Period    // Длительность; для пакета по умолчанию берется из каталога
	MassageType  string           // Вид массажа
	PackageID    string           // Пакет клиента (взаимоисключающе с IsAvulsa)
	IsAvulsa     bool             // Разовая оплата
	Professional string           // Профессионал; пусто - профессионал по умолчанию
	Notes        string           // Заметки (опционально)
}

// Response модель ответа с созданной сессией
type Response struct {
	ID           string
	ClientID     string
	ClientName   string
	Date         time.Time
	Time         types.TimeString
	Period       domain.Period
	MassageType  string
	PackageID    string
	PackageName  string
	Status       domain.SessionStatus
	Professional string
	IsAvulsa     bool
	Notes        string
}
