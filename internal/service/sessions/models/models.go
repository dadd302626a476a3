package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid session status")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("start date is after end date")
)

// Request модели

// ListSessionsRequest фильтр списка сессий
type ListSessionsRequest struct {
	StartDate    *time.Time
	EndDate      *time.Time
	Professional *string
	ClientID     *string
	Status       *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSessionsRequest) ToDomainFilter() (domain.SessionsFilter, error) {
	filter := domain.SessionsFilter{
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Professional: r.Professional,
		ClientID:     r.ClientID,
	}
	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return filter, ErrInvalidPeriod
	}
	if r.Status != nil {
		status := domain.SessionStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}
	return filter, nil
}

// Response модели

// SessionResponse сессия
type SessionResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"clientId"`
	ClientName   string `json:"clientName,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Period       string `json:"period"`
	MassageType  string `json:"massageType"`
	PackageID    string `json:"packageId,omitempty"`
	PackageName  string `json:"packageName,omitempty"`
	Status       string `json:"status"`
	Professional string `json:"professional"`
	IsAvulsa     bool   `json:"isAvulsa"`
	Notes        string `json:"notes,omitempty"`
}

// SessionListResponse список сессий
type SessionListResponse struct {
	Sessions []*SessionResponse `json:"sessions"`
	Total    int                `json:"total"`
}

// NumberResponse номер сессии в пакете
type NumberResponse struct {
	SessionID string `json:"sessionId"`
	Number    string `json:"number"` // "3/10" или "-"
}

// FromDomainSession конвертирует domain сессию в response
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID:           s.ID,
		ClientID:     s.ClientID,
		ClientName:   s.ClientName,
		Date:         s.Date,
		Time:         s.Time,
		Period:       string(s.Period),
		MassageType:  s.MassageType,
		PackageID:    s.PackageID,
		PackageName:  s.PackageName,
		Status:       string(s.Status),
		Professional: s.Professional,
		IsAvulsa:     s.IsAvulsa,
		Notes:        s.Notes,
	}
}

// FromDomainSessionList конвертирует список domain сессий в response
func FromDomainSessionList(list []*domain.Session) *SessionListResponse {
	out := make([]*SessionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromDomainSession(s))
	}
	return &SessionListResponse{Sessions: out, Total: len(out)}
}
