package create_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	sessionRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

const transitionCreate = "create"

// UseCase use case для создания сессии
type UseCase struct {
	sessionRepo  SessionRepository
	clientRepo   ClientRepository
	catalog      Catalog
	packages     PackageSelector
	engine       Engine
	roster       domain.Roster
	txManager    TransactionManager
	metrics      MetricsCollector
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(
	sessionRepo SessionRepository,
	clientRepo ClientRepository,
	catalog Catalog,
	packages PackageSelector,
	engine Engine,
	roster domain.Roster,
	txManager TransactionManager,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		clientRepo:   clientRepo,
		catalog:      catalog,
		packages:     packages,
		engine:       engine,
		roster:       roster,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания сессии
// Проверка занятости и запись выполняются под одним TransactionManager.Do
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	day := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateSession: client=%s, date=%s, time=%s, period=%s, professional=%s",
		req.ClientID, day, req.Time, req.Period, req.Professional)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSession: validation failed: %v", err)
		return nil, err
	}
	at, err := types.NewTimeStringFromString(req.Time.String())
	if err != nil {
		return nil, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}

	// 2. Профессионал
	professional, ok := uc.roster.Resolve(req.Professional)
	if !ok {
		uc.logger.Warn("CreateSession: unknown professional=%s", req.Professional)
		return nil, ErrUnknownProfessional
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Session

	// 4. Проверки и запись выполняются эксклюзивно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Клиент
		client, err := uc.clientRepo.GetByID(txCtx, req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateSession: client id=%s not found", req.ClientID)
				return ErrClientNotFound
			}
			uc.logger.Error("CreateSession: failed to get client id=%s: %v", req.ClientID, err)
			return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}

		// 4.2. Все сессии (для пакетов и для проверки занятости)
		sessions, err := uc.sessionRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateSession: failed to get sessions: %v", err)
			return fmt.Errorf("%w: failed to get sessions: %v", ErrInternal, err)
		}

		// 4.3. Способ оплаты
		active := uc.packages.ActivePackages(client, sessions, now)
		pkg, err := resolveFunding(req, active)
		if err != nil {
			uc.logger.Warn("CreateSession: funding rejected for client=%s: %v", req.ClientID, err)
			return err
		}

		// 4.4. Длительность
		period := req.Period
		if period == "" && pkg != nil {
			period = uc.catalog.DefaultPeriodForPackage(pkg.Name)
		}
		if period == "" {
			uc.logger.Warn("CreateSession: period is required for client=%s", req.ClientID)
			return fmt.Errorf("%w: period is required", ErrInvalidInput)
		}

		// 4.5. Сессия должна закончиться до следующей записи профессионала
		daySessions := sessionsOf(sessions, day, professional)
		if !uc.engine.CanStartAt(req.Date, at.String(), period.Minutes(), daySessions) {
			uc.logger.Warn("CreateSession: slot %s %s (%s) not available for professional=%s",
				day, at, period, professional)
			return ErrSlotNotAvailable
		}

		// 4.6. Создаем сессию
		session := &domain.Session{
			ID:           req.ID,
			ClientID:     client.ID,
			ClientName:   client.Name,
			Date:         day,
			Time:         at.String(),
			Period:       period,
			MassageType:  req.MassageType,
			Status:       domain.StatusScheduled,
			Professional: professional,
			IsAvulsa:     pkg == nil,
			Notes:        req.Notes,
		}
		if session.ID == "" {
			session.ID = uuid.NewString()
		}
		if pkg != nil {
			session.PackageID = pkg.ID
			session.PackageName = pkg.Name
		}

		created, err := uc.sessionRepo.Create(txCtx, session)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionExists) {
				uc.logger.Warn("CreateSession: session id=%s already exists", session.ID)
				return ErrSessionExists
			}
			uc.logger.Error("CreateSession: failed to create session: %v", err)
			return fmt.Errorf("%w: failed to create session: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.IncSessionTransition(transitionCreate)
	}

	uc.logger.Info("CreateSession: successfully created session id=%s", result.ID)

	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		ClientName:   result.ClientName,
		Date:         req.Date,
		Time:         at,
		Period:       result.Period,
		MassageType:  result.MassageType,
		PackageID:    result.PackageID,
		PackageName:  result.PackageName,
		Status:       result.Status,
		Professional: result.Professional,
		IsAvulsa:     result.IsAvulsa,
		Notes:        result.Notes,
	}, nil
}
