package clients

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	"github.com/m04kA/SMC-StudioService/internal/numbering"
	"github.com/m04kA/SMC-StudioService/internal/service/clients/models"
)

// Service сервис для работы с клиентами и их пакетами
type Service struct {
	clientRepo   ClientRepository
	sessionRepo  SessionRepository
	catalog      Catalog
	usage        UsageCalculator
	validate     *validator.Validate
	timeProvider TimeProvider
	packageID    func() int
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	sessionRepo SessionRepository,
	catalog Catalog,
	usage UsageCalculator,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:   clientRepo,
		sessionRepo:  sessionRepo,
		catalog:      catalog,
		usage:        usage,
		validate:     validator.New(),
		timeProvider: &RealTimeProvider{},
		packageID:    randomPackageID,
		logger:       logger,
	}
}

// List возвращает всех клиентов с использованием пакетов
func (s *Service) List(ctx context.Context) ([]*models.ClientResponse, error) {
	all, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: failed to load sessions: %v", err)
		return nil, fmt.Errorf("%w: List - sessions: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now()
	out := make([]*models.ClientResponse, 0, len(all))
	for _, c := range all {
		out = append(out, s.toResponse(c, sessions, today))
	}
	return out, nil
}

// Get возвращает клиента по ID
func (s *Service) Get(ctx context.Context, id string) (*models.ClientResponse, error) {
	client, err := s.getClient(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Get: failed to load sessions: %v", err)
		return nil, fmt.Errorf("%w: Get - sessions: %v", ErrInternal, err)
	}
	return s.toResponse(client, sessions, s.timeProvider.Now()), nil
}

// Create создает клиента без пакетов
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	client := &domain.Client{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Birthday: req.Birthday,
		Notes:    req.Notes,
		Packages: []*domain.Package{},
	}
	if _, err := s.clientRepo.Create(ctx, client); err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: client id=%s created", client.ID)
	return s.toResponse(client, nil, s.timeProvider.Now()), nil
}

// Delete удаляет клиента; его сессии остаются
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: client id=%s removed", id)
	return nil
}

// AddPackage добавляет пакет из каталога клиенту
// ID пакета трёхзначный и уникален в пределах клиента
func (s *Service) AddPackage(ctx context.Context, clientID string, req *models.AddPackageRequest) (*models.PackageResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("AddPackage: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !s.catalog.Has(req.Name) {
		s.logger.Warn("AddPackage: unknown package name=%q", req.Name)
		return nil, ErrUnknownPackage
	}

	now := s.timeProvider.Now()
	var added *domain.Package
	_, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		id, err := s.freePackageID(c)
		if err != nil {
			return err
		}
		added = &domain.Package{
			ID:               id,
			Name:             req.Name,
			Validity:         req.Validity,
			SessionsUsedBase: req.SessionsUsedBase,
			IsNew:            req.IsNew,
		}
		if req.IsNew {
			added.NewAssignedAt = now.Format(time.RFC3339)
		}
		c.Packages = append(c.Packages, added)
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateErr("AddPackage", clientID, err)
	}

	s.logger.Info("AddPackage: package id=%s name=%q added to client id=%s", added.ID, added.Name, clientID)
	return s.packageResponse(ctx, clientID, added)
}

// UpdatePackage изменяет дату действия, ручное смещение или отметку "новый"
func (s *Service) UpdatePackage(ctx context.Context, clientID, packageID string, req *models.UpdatePackageRequest) (*models.PackageResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdatePackage: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timeProvider.Now()
	var updated *domain.Package
	_, err := s.clientRepo.Update(ctx, clientID, func(c *domain.Client) error {
		p := c.FindPackage(packageID)
		if p == nil {
			return ErrPackageNotFound
		}
		if req.Validity != nil {
			p.Validity = *req.Validity
		}
		if req.SessionsUsedBase != nil {
			p.SessionsUsedBase = *req.SessionsUsedBase
		}
		if req.IsNew != nil {
			if *req.IsNew && !p.IsNew {
				p.NewAssignedAt = now.Format(time.RFC3339)
			}
			if !*req.IsNew {
				p.NewAssignedAt = ""
			}
			p.IsNew = *req.IsNew
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateErr("UpdatePackage", clientID, err)
	}

	s.logger.Info("UpdatePackage: package id=%s of client id=%s updated", packageID, clientID)
	return s.packageResponse(ctx, clientID, updated)
}

// ActivePackages непросроченные пакеты клиента
func (s *Service) ActivePackages(ctx context.Context, clientID string) ([]*models.PackageResponse, error) {
	client, err := s.getClient(ctx, "ActivePackages", clientID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ActivePackages: failed to load sessions: %v", err)
		return nil, fmt.Errorf("%w: ActivePackages - sessions: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now()
	active := s.usage.ActivePackages(client, sessions, today)
	out := make([]*models.PackageResponse, 0, len(active))
	for _, p := range active {
		out = append(out, models.FromDomainPackage(p, s.usage.Usage(client.ID, p, sessions, today)))
	}
	return out, nil
}

func (s *Service) getClient(ctx context.Context, op, id string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("%s: client id=%s not found", op, id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("%s: repository error for client id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return client, nil
}

func (s *Service) packageResponse(ctx context.Context, clientID string, p *domain.Package) (*models.PackageResponse, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: sessions: %v", ErrInternal, err)
	}
	return models.FromDomainPackage(p, s.usage.Usage(clientID, p, sessions, s.timeProvider.Now())), nil
}

func (s *Service) toResponse(c *domain.Client, sessions []*domain.Session, today time.Time) *models.ClientResponse {
	return models.FromDomainClient(c, func(p *domain.Package) numbering.Usage {
		return s.usage.Usage(c.ID, p, sessions, today)
	})
}

func (s *Service) mapUpdateErr(op, clientID string, err error) error {
	switch {
	case errors.Is(err, clientRepo.ErrClientNotFound):
		s.logger.Warn("%s: client id=%s not found", op, clientID)
		return ErrClientNotFound
	case errors.Is(err, ErrPackageNotFound), errors.Is(err, ErrNoFreePackageID):
		s.logger.Warn("%s: client id=%s: %v", op, clientID, err)
		return err
	default:
		s.logger.Error("%s: repository error for client id=%s: %v", op, clientID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// freePackageID подбирает случайный трёхзначный ID, не занятый у клиента
func (s *Service) freePackageID(c *domain.Client) (string, error) {
	taken := make(map[string]bool, len(c.Packages))
	for _, p := range c.Packages {
		taken[p.ID] = true
	}
	capacity := domain.PackageIDMax - domain.PackageIDMin + 1
	if len(taken) >= capacity {
		return "", ErrNoFreePackageID
	}
	for attempt := 0; attempt < capacity; attempt++ {
		id := strconv.Itoa(s.packageID())
		if !taken[id] {
			return id, nil
		}
	}
	// генератор не нашёл свободный ID, берём первый по порядку
	for n := domain.PackageIDMin; n <= domain.PackageIDMax; n++ {
		id := strconv.Itoa(n)
		if !taken[id] {
			return id, nil
		}
	}
	return "", ErrNoFreePackageID
}

func randomPackageID() int {
	return domain.PackageIDMin + rand.IntN(domain.PackageIDMax-domain.PackageIDMin+1)
}

// ReconcileUsage пересчитывает сохранённый счётчик sessionsUsed всех пакетов
// по выполненным сессиям; возвращает количество исправленных пакетов
func (s *Service) ReconcileUsage(ctx context.Context) (int, error) {
	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ReconcileUsage: failed to load clients: %v", err)
		return 0, fmt.Errorf("%w: ReconcileUsage - clients: %v", ErrInternal, err)
	}
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ReconcileUsage: failed to load sessions: %v", err)
		return 0, fmt.Errorf("%w: ReconcileUsage - sessions: %v", ErrInternal, err)
	}

	fixed := 0
	for _, c := range clients {
		if !hasStaleUsage(c, sessions) {
			continue
		}
		_, err := s.clientRepo.Update(ctx, c.ID, func(client *domain.Client) error {
			for _, p := range client.Packages {
				if p == nil {
					continue
				}
				done := numbering.DoneCount(client.ID, p.ID, sessions)
				if p.SessionsUsed != done {
					p.SessionsUsed = done
					fixed++
				}
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				continue
			}
			s.logger.Error("ReconcileUsage: failed to update client id=%s: %v", c.ID, err)
			return fixed, fmt.Errorf("%w: ReconcileUsage - update: %v", ErrInternal, err)
		}
	}

	if fixed > 0 {
		s.logger.Warn("ReconcileUsage: fixed %d stale package counters", fixed)
	}
	return fixed, nil
}

func hasStaleUsage(c *domain.Client, sessions []*domain.Session) bool {
	for _, p := range c.Packages {
		if p != nil && p.SessionsUsed != numbering.DoneCount(c.ID, p.ID, sessions) {
			return true
		}
	}
	return false
}
