package sessions

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	sessionRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-StudioService/internal/numbering"
	"github.com/m04kA/SMC-StudioService/internal/service/sessions/models"
)

const (
	transitionComplete = "complete"
	transitionCancel   = "cancel"
	transitionRemove   = "remove"
)

// Service сервис переходов статусов и удаления сессий
type Service struct {
	sessionRepo SessionRepository
	clientRepo  ClientRepository
	numberer    Numberer
	metrics     MetricsCollector
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий; metrics может быть nil
func NewService(
	sessionRepo SessionRepository,
	clientRepo ClientRepository,
	numberer Numberer,
	metrics MetricsCollector,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		clientRepo:  clientRepo,
		numberer:    numberer,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает сессии по фильтру, упорядоченные по дате и времени
func (s *Service) List(ctx context.Context, req *models.ListSessionsRequest) (*models.SessionListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})

	s.logger.Info("List: fetched %d sessions", len(list))
	return models.FromDomainSessionList(list), nil
}

// Get получает сессию по ID
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoErr("Get", id, err)
	}
	return models.FromDomainSession(session), nil
}

// Complete переводит сессию scheduled -> done
func (s *Service) Complete(ctx context.Context, id string) (*models.SessionResponse, error) {
	return s.transition(ctx, "Complete", transitionComplete, id, func(session *domain.Session) error {
		if !session.CanBeCompleted() {
			return ErrInvalidTransition
		}
		session.Status = domain.StatusDone
		return nil
	})
}

// Cancel переводит сессию scheduled -> cancelled
func (s *Service) Cancel(ctx context.Context, id string) (*models.SessionResponse, error) {
	return s.transition(ctx, "Cancel", transitionCancel, id, func(session *domain.Session) error {
		if !session.CanBeCancelled() {
			return ErrInvalidTransition
		}
		session.Status = domain.StatusCancelled
		return nil
	})
}

// Remove удаляет сессию в любом статусе
// Для сессии пакета кэш sessionsUsed пересчитывается по оставшимся выполненным сессиям
func (s *Service) Remove(ctx context.Context, id string) error {
	s.logger.Info("Remove: removing session id=%s", id)

	removed, err := s.sessionRepo.Delete(ctx, id)
	if err != nil {
		return s.mapRepoErr("Remove", id, err)
	}
	if s.metrics != nil {
		s.metrics.IncSessionTransition(transitionRemove)
	}

	if removed.IsPackageLinked() {
		s.refreshUsage(ctx, removed.ClientID, removed.PackageID)
	}

	s.logger.Info("Remove: session id=%s removed", id)
	return nil
}

// Number номер сессии в пакете в виде "i/N" или "-"
func (s *Service) Number(ctx context.Context, id string) (*models.NumberResponse, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Number: failed to load sessions: %v", err)
		return nil, fmt.Errorf("%w: Number - sessions: %v", ErrInternal, err)
	}

	resp := &models.NumberResponse{SessionID: id, Number: numbering.Sentinel}
	var target *domain.Session
	for _, session := range sessions {
		if session.ID == id {
			target = session
			break
		}
	}
	if target == nil || target.ClientID == "" {
		return resp, nil
	}

	client, err := s.clientRepo.GetByID(ctx, target.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return resp, nil
		}
		s.logger.Error("Number: failed to load client id=%s: %v", target.ClientID, err)
		return nil, fmt.Errorf("%w: Number - client: %v", ErrInternal, err)
	}

	resp.Number = s.numberer.Label(id, client, sessions)
	return resp, nil
}

func (s *Service) transition(
	ctx context.Context,
	op, transition, id string,
	apply func(session *domain.Session) error,
) (*models.SessionResponse, error) {
	s.logger.Info("%s: session id=%s", op, id)

	updated, err := s.sessionRepo.Update(ctx, id, apply)
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			s.logger.Warn("%s: session id=%s is not scheduled", op, id)
			return nil, ErrInvalidTransition
		}
		return nil, s.mapRepoErr(op, id, err)
	}
	if s.metrics != nil {
		s.metrics.IncSessionTransition(transition)
	}

	if updated.IsPackageLinked() {
		s.refreshUsage(ctx, updated.ClientID, updated.PackageID)
	}

	s.logger.Info("%s: session id=%s now %s", op, id, updated.Status)
	return models.FromDomainSession(updated), nil
}

// refreshUsage обновляет кэш sessionsUsed пакета
// Кэш только для отображения, поэтому ошибки логируются и не прерывают операцию
func (s *Service) refreshUsage(ctx context.Context, clientID, packageID string) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("refreshUsage: failed to load sessions: %v", err)
		return
	}
	done := numbering.DoneCount(clientID, packageID, sessions)

	_, err = s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		if p := c.FindPackage(packageID); p != nil {
			p.SessionsUsed = done
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("refreshUsage: orphan session, client id=%s not found", clientID)
			return
		}
		s.logger.Error("refreshUsage: failed to update client id=%s: %v", clientID, err)
		return
	}
	s.logger.Info("refreshUsage: client=%s package=%s sessionsUsed=%d", clientID, packageID, done)
}

func (s *Service) mapRepoErr(op, id string, err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		s.logger.Warn("%s: session id=%s not found", op, id)
		return ErrSessionNotFound
	}
	s.logger.Error("%s: repository error for session id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
