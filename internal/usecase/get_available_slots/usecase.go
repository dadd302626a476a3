package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioService/internal/availability"
	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// UseCase use case для получения доступных слотов профессионала на дату
type UseCase struct {
	sessionRepo SessionRepository
	slotsRepo   CustomSlotsRepository
	blocksRepo  BlocksRepository
	engine      Engine
	roster      domain.Roster
	metrics     MetricsCollector
	logger      Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(
	sessionRepo SessionRepository,
	slotsRepo CustomSlotsRepository,
	blocksRepo BlocksRepository,
	engine Engine,
	roster domain.Roster,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		slotsRepo:   slotsRepo,
		blocksRepo:  blocksRepo,
		engine:      engine,
		roster:      roster,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	day := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: professional=%s, date=%s, period=%s", req.Professional, day, req.Period)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	if !uc.roster.Has(req.Professional) {
		uc.logger.Warn("GetAvailableSlots: unknown professional=%s", req.Professional)
		return nil, ErrUnknownProfessional
	}

	// 2. Сессии профессионала на дату
	sessions, err := uc.sessionRepo.GetByDateAndProfessional(ctx, day, req.Professional)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
	}

	// 3. Дополнительные слоты
	custom, err := uc.slotsRepo.Get(ctx, day, req.Professional)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get custom slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get custom slots: %v", ErrInternal, err)
	}

	// 4. Блокировки
	blocked, err := uc.blocksRepo.Get(ctx, day, req.Professional)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked intervals: %v", ErrInternal, err)
	}
	blocks := make([]availability.Block, 0, len(blocked))
	for _, b := range blocked {
		blocks = append(blocks, availability.Block{Start: b.Start, End: b.End})
	}

	// 5. Генерация слотов
	duration := req.Period.Minutes()
	slots := uc.engine.AvailableSlots(availability.Input{
		Date:             req.Date,
		DurationMinutes:  duration,
		Sessions:         sessions,
		CustomSlots:      custom,
		BlockedIntervals: blocks,
	})
	if uc.metrics != nil {
		uc.metrics.ObserveSlotsGenerated(req.Professional, len(slots))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%s, date=%s", len(slots), req.Professional, day)

	return &Response{
		Date:            req.Date,
		Professional:    req.Professional,
		Period:          req.Period,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
