package models

import (
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// AddEntryRequest запрос на добавление записи
type AddEntryRequest struct {
	Value       float64 `json:"value" validate:"ne=0"`
	Description string  `json:"description" validate:"required,max=200"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// ListEntriesRequest фильтр по периоду (включительно)
type ListEntriesRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// EntryResponse ручная запись
type EntryResponse struct {
	ID          string  `json:"id"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// EntryListResponse список записей с итогом
type EntryListResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   float64          `json:"total"`
}

// FromDomainEntry конвертирует domain запись в response
func FromDomainEntry(e *domain.ManualEntry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Value:       e.Value,
		Description: e.Description,
		Date:        e.Date,
	}
}
