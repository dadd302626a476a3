package confirm_fixed_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	scheduleRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/fixedschedules"
	createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// UseCase превращает шаблон horário fixo в конкретную сессию
type UseCase struct {
	scheduleRepo ScheduleRepository
	clientRepo   ClientRepository
	sessionRepo  SessionRepository
	catalog      Catalog
	packages     PackageSelector
	creator      SessionCreator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	clientRepo ClientRepository,
	sessionRepo SessionRepository,
	catalog Catalog,
	packages PackageSelector,
	creator SessionCreator,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		clientRepo:   clientRepo,
		sessionRepo:  sessionRepo,
		catalog:      catalog,
		packages:     packages,
		creator:      creator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает сессию шаблона на ближайший день недели (сегодня включительно)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmFixedSchedule: schedule=%s", req.ScheduleID)

	// 1. Шаблон
	schedule, err := uc.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("ConfirmFixedSchedule: schedule id=%s not found", req.ScheduleID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("ConfirmFixedSchedule: failed to get schedule id=%s: %v", req.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if !schedule.Active {
		uc.logger.Warn("ConfirmFixedSchedule: schedule id=%s is inactive", req.ScheduleID)
		return nil, ErrScheduleInactive
	}

	// 2. Клиент и его сессии
	client, err := uc.clientRepo.GetByID(ctx, schedule.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("ConfirmFixedSchedule: client id=%s not found", schedule.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("ConfirmFixedSchedule: failed to get client id=%s: %v", schedule.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	sessions, err := uc.sessionRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("ConfirmFixedSchedule: failed to get sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
	}

	// 3. Дата и способ оплаты
	now := uc.timeProvider.Now()
	date := schedule.NextDate(now)
	pkg := choosePackage(schedule, uc.packages.ActivePackages(client, sessions, now))

	period := domain.Period1h
	switch {
	case pkg != nil && uc.catalog.DefaultPeriodForPackage(pkg.Name) != "":
		period = uc.catalog.DefaultPeriodForPackage(pkg.Name)
	case schedule.Period != "":
		period = schedule.Period
	}

	createReq := &createSession.Request{
		ID:           schedule.SessionID(date.Format(domain.DateFormat)),
		ClientID:     schedule.ClientID,
		Date:         date,
		Time:         types.TimeString(schedule.Time),
		Period:       period,
		MassageType:  domain.FixedScheduleMassageType,
		IsAvulsa:     pkg == nil,
		Professional: schedule.Professional,
		Notes:        domain.FixedScheduleNotes,
	}
	if pkg != nil {
		createReq.PackageID = pkg.ID
	}

	// 4. Общий сценарий записи
	resp, err := uc.creator.Execute(ctx, createReq)
	if err != nil {
		if errors.Is(err, createSession.ErrSessionExists) {
			uc.logger.Warn("ConfirmFixedSchedule: schedule id=%s already confirmed for %s", schedule.ID, date.Format(domain.DateFormat))
			return nil, ErrAlreadyConfirmed
		}
		return nil, err
	}

	uc.logger.Info("ConfirmFixedSchedule: schedule id=%s confirmed as session id=%s", schedule.ID, resp.ID)
	return resp, nil
}

// choosePackage пакет шаблона, если он активен, иначе первый активный пакет клиента
// nil означает разовую оплату
func choosePackage(schedule *domain.FixedSchedule, active []*domain.Package) *domain.Package {
	if schedule.IsAvulsa || len(active) == 0 {
		return nil
	}
	for _, p := range active {
		if p.ID == schedule.PackageID {
			return p
		}
	}
	return active[0]
}
