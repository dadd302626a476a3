package create_session

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	ID           string `json:"id,omitempty"`
	ClientID     string `json:"clientId"`
	Date         string `json:"date"` // "2025-03-10"
	Time         string `json:"time"` // "10:00"
	Period       string `json:"period,omitempty"`
	MassageType  string `json:"massageType"`
	PackageID    string `json:"packageId,omitempty"`
	IsAvulsa     bool   `json:"isAvulsa"`
	Professional string `json:"professional,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"clientId"`
	ClientName   string `json:"clientName"`
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

var (
	errInvalidDate = errors.New("invalid session date")
	errInvalidTime = errors.New("invalid session time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest() (*createSession.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	at, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createSession.Request{
		ID:           r.ID,
		ClientID:     r.ClientID,
		Date:         date,
		Time:         at,
		Period:       domain.Period(r.Period),
		MassageType:  r.MassageType,
		PackageID:    r.PackageID,
		IsAvulsa:     r.IsAvulsa,
		Professional: r.Professional,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		ClientName:   resp.ClientName,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		Period:       string(resp.Period),
		MassageType:  resp.MassageType,
		PackageID:    resp.PackageID,
		PackageName:  resp.PackageName,
		Status:       string(resp.Status),
		Professional: resp.Professional,
		IsAvulsa:     resp.IsAvulsa,
		Notes:        resp.Notes,
	}
}
