package create_session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// validateRequest валидирует обязательные поля запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientID) == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.MassageType) == "" {
		return fmt.Errorf("%w: massageType is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.MassageType) > domain.MaxMassageTypeLength {
		return fmt.Errorf("%w: massageType is too long", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.Period != "" && !req.Period.IsKnown() {
		return fmt.Errorf("%w: unknown period %q", ErrInvalidInput, req.Period)
	}

	if req.PackageID != "" && req.IsAvulsa {
		return ErrAmbiguousFunding
	}

	return nil
}

// resolveFunding выбирает пакет или разовую оплату
// Клиент без активных пакетов всегда оплачивает разово и не может выбрать пакет;
// клиент с активными пакетами должен явно выбрать способ оплаты
func resolveFunding(req *Request, active []*domain.Package) (*domain.Package, error) {
	if len(active) == 0 {
		if req.PackageID != "" {
			return nil, fmt.Errorf("%w: client has no active packages", ErrPackageNotActive)
		}
		return nil, nil
	}

	if req.IsAvulsa {
		return nil, nil
	}
	if req.PackageID == "" {
		return nil, ErrFundingModeRequired
	}
	for _, p := range active {
		if p.ID == req.PackageID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: package %s", ErrPackageNotActive, req.PackageID)
}

// sessionsOf сессии профессионала на дату
func sessionsOf(sessions []*domain.Session, date, professional string) []*domain.Session {
	out := make([]*domain.Session, 0)
	for _, s := range sessions {
		if s.Date == date && s.Professional == professional {
			out = append(out, s)
		}
	}
	return out
}
