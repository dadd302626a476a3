package models

import "github.com/m04kA/SMC-StudioService/internal/domain"

// Request модели

// CreateScheduleRequest запрос на создание шаблона
type CreateScheduleRequest struct {
	ClientID     string `json:"clientId" validate:"required"`
	Weekday      int    `json:"weekday" validate:"min=1,max=6"`
	Time         string `json:"time" validate:"required"`
	Period       string `json:"period,omitempty"`
	PackageID    string `json:"packageId,omitempty"`
	IsAvulsa     bool   `json:"isAvulsa"`
	Professional string `json:"professional,omitempty"`
}

// Response модели

// ScheduleResponse шаблон еженедельной записи
type ScheduleResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"clientId"`
	Weekday      int    `json:"weekday"`
	Time         string `json:"time"`
	Period       string `json:"period,omitempty"`
	PackageID    string `json:"packageId,omitempty"`
	IsAvulsa     bool   `json:"isAvulsa"`
	Professional string `json:"professional"`
	Active       bool   `json:"active"`
}

// PendingResponse шаблон, для которого на этой неделе ещё нет сессии
type PendingResponse struct {
	Schedule   *ScheduleResponse `json:"schedule"`
	ClientName string            `json:"clientName,omitempty"`
	Date       string            `json:"date"`
	SessionID  string            `json:"sessionId"`
}

// FromDomainSchedule конвертирует domain шаблон в response
func FromDomainSchedule(f *domain.FixedSchedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:           f.ID,
		ClientID:     f.ClientID,
		Weekday:      f.Weekday,
		Time:         f.Time,
		Period:       string(f.Period),
		PackageID:    f.PackageID,
		IsAvulsa:     f.IsAvulsa,
		Professional: f.Professional,
		Active:       f.Active,
	}
}

// FromDomainScheduleList конвертирует список шаблонов в response
func FromDomainScheduleList(list []*domain.FixedSchedule) []*ScheduleResponse {
	out := make([]*ScheduleResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromDomainSchedule(f))
	}
	return out
}
