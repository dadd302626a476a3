package models

import (
	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/numbering"
)

// Request модели

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes    string `json:"notes,omitempty" validate:"max=500"`
}

// AddPackageRequest запрос на добавление пакета клиенту
type AddPackageRequest struct {
	Name             string `json:"name" validate:"required"`
	Validity         string `json:"validity,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SessionsUsedBase int    `json:"sessionsUsedBase" validate:"min=0"`
	IsNew            bool   `json:"isNew,omitempty"`
}

// UpdatePackageRequest частичное обновление пакета
type UpdatePackageRequest struct {
	Validity         *string `json:"validity,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SessionsUsedBase *int    `json:"sessionsUsedBase,omitempty" validate:"omitempty,min=0"`
	IsNew            *bool   `json:"isNew,omitempty"`
}

// Response модели

// PackageResponse пакет клиента с вычисленным использованием
type PackageResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Validity         string `json:"validity,omitempty"`
	SessionsUsedBase int    `json:"sessionsUsedBase"`
	SessionsUsed     int    `json:"sessionsUsed"`
	IsNew            bool   `json:"isNew,omitempty"`
	NewAssignedAt    string `json:"newAssignedAt,omitempty"`
	Used             int    `json:"used"`
	Total            int    `json:"total"`
	Remaining        int    `json:"remaining"`
	Expired          bool   `json:"expired"`
}

// ClientResponse клиент со своими пакетами
type ClientResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Email    string             `json:"email,omitempty"`
	Phone    string             `json:"phone,omitempty"`
	Birthday string             `json:"birthday,omitempty"`
	Notes    string             `json:"notes,omitempty"`
	Packages []*PackageResponse `json:"packages"`
}

// FromDomainPackage конвертирует пакет и его использование в response
func FromDomainPackage(p *domain.Package, usage numbering.Usage) *PackageResponse {
	return &PackageResponse{
		ID:               p.ID,
		Name:             p.Name,
		Validity:         p.Validity,
		SessionsUsedBase: p.SessionsUsedBase,
		SessionsUsed:     p.SessionsUsed,
		IsNew:            p.IsNew,
		NewAssignedAt:    p.NewAssignedAt,
		Used:             usage.Used,
		Total:            usage.Total,
		Remaining:        usage.Remaining,
		Expired:          usage.Expired,
	}
}

// FromDomainClient конвертирует клиента в response; usage вычисляется для каждого пакета
func FromDomainClient(c *domain.Client, usage func(p *domain.Package) numbering.Usage) *ClientResponse {
	pkgs := make([]*PackageResponse, 0, len(c.Packages))
	for _, p := range c.Packages {
		pkgs = append(pkgs, FromDomainPackage(p, usage(p)))
	}
	return &ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Birthday: c.Birthday,
		Notes:    c.Notes,
		Packages: pkgs,
	}
}
