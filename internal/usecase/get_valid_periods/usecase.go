package get_valid_periods

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// UseCase use case для получения длительностей, которые можно начать в выбранное время
type UseCase struct {
	sessionRepo SessionRepository
	engine      Engine
	roster      domain.Roster
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, engine Engine, roster domain.Roster, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		engine:      engine,
		roster:      roster,
		logger:      logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	day := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetValidPeriods: professional=%s, date=%s, time=%s", req.Professional, day, req.Time)

	// 1. Валидация
	if req.Date.IsZero() {
		uc.logger.Warn("GetValidPeriods: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		uc.logger.Warn("GetValidPeriods: invalid time=%q: %v", req.Time, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !uc.roster.Has(req.Professional) {
		uc.logger.Warn("GetValidPeriods: unknown professional=%s", req.Professional)
		return nil, ErrUnknownProfessional
	}

	// 2. Сессии профессионала на дату
	sessions, err := uc.sessionRepo.GetByDateAndProfessional(ctx, day, req.Professional)
	if err != nil {
		uc.logger.Error("GetValidPeriods: failed to get sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
	}

	// 3. Расчет
	periods := uc.engine.ValidPeriods(req.Date, req.Time.String(), sessions)

	uc.logger.Info("GetValidPeriods: %d periods available at %s %s", len(periods), day, req.Time)
	return &Response{
		Date:         req.Date,
		Time:         req.Time,
		Professional: req.Professional,
		Periods:      periods,
	}, nil
}
