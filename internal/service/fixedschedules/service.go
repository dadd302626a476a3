package fixedschedules

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	scheduleRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/fixedschedules"
	"github.com/m04kA/SMC-StudioService/internal/service/fixedschedules/models"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Service шаблоны еженедельных записей (horários fixos)
type Service struct {
	scheduleRepo ScheduleRepository
	clientRepo   ClientRepository
	sessionRepo  SessionRepository
	roster       domain.Roster
	validate     *validator.Validate
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(
	scheduleRepo ScheduleRepository,
	clientRepo ClientRepository,
	sessionRepo SessionRepository,
	roster domain.Roster,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		clientRepo:   clientRepo,
		sessionRepo:  sessionRepo,
		roster:       roster,
		validate:     validator.New(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает все шаблоны, упорядоченные по дню недели и времени
func (s *Service) List(ctx context.Context) ([]*models.ScheduleResponse, error) {
	all, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	sortSchedules(all)
	return models.FromDomainScheduleList(all), nil
}

// Create создает активный шаблон
func (s *Service) Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Create: client=%s weekday=%d time=%s", req.ClientID, req.Weekday, req.Time)

	// 1. Валидация
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	ts, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		s.logger.Warn("Create: invalid time=%q: %v", req.Time, err)
		return nil, fmt.Errorf("%w: time %q", ErrInvalidInput, req.Time)
	}
	period := domain.Period(req.Period)
	if period != "" && !period.IsKnown() {
		s.logger.Warn("Create: unknown period=%q", req.Period)
		return nil, fmt.Errorf("%w: period %q", ErrInvalidInput, req.Period)
	}
	if req.IsAvulsa && req.PackageID != "" {
		s.logger.Warn("Create: both package and avulsa set for client=%s", req.ClientID)
		return nil, fmt.Errorf("%w: package and avulsa are mutually exclusive", ErrInvalidInput)
	}
	professional, ok := s.roster.Resolve(req.Professional)
	if !ok {
		s.logger.Warn("Create: unknown professional=%s", req.Professional)
		return nil, ErrUnknownProfessional
	}

	// 2. Клиент должен существовать
	client, err := s.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Create: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Create: failed to get client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: Create - client: %v", ErrInternal, err)
	}
	if req.PackageID != "" && client.FindPackage(req.PackageID) == nil {
		s.logger.Warn("Create: package id=%s not found for client=%s", req.PackageID, req.ClientID)
		return nil, fmt.Errorf("%w: package %s not found", ErrInvalidInput, req.PackageID)
	}

	// 3. Сохраняем
	schedule := &domain.FixedSchedule{
		ID:           uuid.NewString(),
		ClientID:     req.ClientID,
		Weekday:      req.Weekday,
		Time:         ts.String(),
		Period:       period,
		PackageID:    req.PackageID,
		IsAvulsa:     req.IsAvulsa,
		Professional: professional,
		Active:       true,
	}
	if _, err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: schedule id=%s created", schedule.ID)
	return models.FromDomainSchedule(schedule), nil
}

// Toggle включает или выключает шаблон
func (s *Service) Toggle(ctx context.Context, id string) (*models.ScheduleResponse, error) {
	updated, err := s.scheduleRepo.Update(ctx, id, func(f *domain.FixedSchedule) error {
		f.Active = !f.Active
		return nil
	})
	if err != nil {
		return nil, s.mapRepoErr("Toggle", id, err)
	}
	s.logger.Info("Toggle: schedule id=%s active=%t", id, updated.Active)
	return models.FromDomainSchedule(updated), nil
}

// Delete удаляет шаблон; созданные из него сессии остаются
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return s.mapRepoErr("Delete", id, err)
	}
	s.logger.Info("Delete: schedule id=%s removed", id)
	return nil
}

// Pending активные шаблоны, для которых в ближайший день недели ещё нет сессии
func (s *Service) Pending(ctx context.Context) ([]*models.PendingResponse, error) {
	schedules, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Pending: repository error: %v", err)
		return nil, fmt.Errorf("%w: Pending - repository error: %v", ErrInternal, err)
	}
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Pending: failed to load sessions: %v", err)
		return nil, fmt.Errorf("%w: Pending - sessions: %v", ErrInternal, err)
	}
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Pending: failed to load clients: %v", err)
		return nil, fmt.Errorf("%w: Pending - clients: %v", ErrInternal, err)
	}
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	sortSchedules(schedules)
	today := s.timeProvider.Now()
	out := make([]*models.PendingResponse, 0)
	for _, f := range schedules {
		if !f.Active {
			continue
		}
		date := f.NextDate(today).Format(domain.DateFormat)
		if IsBooked(f, date, sessions) {
			continue
		}
		out = append(out, &models.PendingResponse{
			Schedule:   models.FromDomainSchedule(f),
			ClientName: names[f.ClientID],
			Date:       date,
			SessionID:  f.SessionID(date),
		})
	}

	s.logger.Info("Pending: %d schedules awaiting confirmation", len(out))
	return out, nil
}

// IsBooked true, если сессия шаблона на дату уже есть
// Совпадение по детерминированному ID или по клиенту, дате и времени занимающей сессии
func IsBooked(f *domain.FixedSchedule, date string, sessions []*domain.Session) bool {
	id := f.SessionID(date)
	for _, session := range sessions {
		if session.ID == id {
			return true
		}
		if session.ClientID == f.ClientID && session.Date == date && session.Time == f.Time && session.IsOccupying() {
			return true
		}
	}
	return false
}

func (s *Service) mapRepoErr(op, id string, err error) error {
	if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		s.logger.Warn("%s: schedule id=%s not found", op, id)
		return ErrScheduleNotFound
	}
	s.logger.Error("%s: repository error for schedule id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func sortSchedules(list []*domain.FixedSchedule) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Weekday != list[j].Weekday {
			return list[i].Weekday < list[j].Weekday
		}
		return list[i].Time < list[j].Time
	})
}
