package entries

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	entryRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/entries"
	"github.com/m04kA/SMC-StudioService/internal/service/entries/models"
)

// Service ручные финансовые записи
type Service struct {
	repo     EntryRepository
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo EntryRepository, logger Logger) *Service {
	return &Service{repo: repo, validate: validator.New(), logger: logger}
}

// List записи за период, упорядоченные по дате; записи с нечитаемой датой не попадают в фильтр
func (s *Service) List(ctx context.Context, req *models.ListEntriesRequest) (*models.EntryListResponse, error) {
	if req.StartDate != nil && req.EndDate != nil && req.StartDate.After(*req.EndDate) {
		s.logger.Warn("List: start date is after end date")
		return nil, fmt.Errorf("%w: start date is after end date", ErrInvalidInput)
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.EntryListResponse{Entries: make([]*models.EntryResponse, 0, len(all))}
	for _, e := range all {
		if !inRange(e.Date, req.StartDate, req.EndDate) {
			continue
		}
		resp.Entries = append(resp.Entries, models.FromDomainEntry(e))
		resp.Total += e.Value
	}
	sort.SliceStable(resp.Entries, func(i, j int) bool { return resp.Entries[i].Date < resp.Entries[j].Date })

	s.logger.Info("List: fetched %d entries", len(resp.Entries))
	return resp, nil
}

// Add добавляет запись
func (s *Service) Add(ctx context.Context, req *models.AddEntryRequest) (*models.EntryResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entry := &domain.ManualEntry{
		ID:          uuid.NewString(),
		Value:       req.Value,
		Description: req.Description,
		Date:        req.Date,
	}
	if _, err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: entry id=%s value=%.2f date=%s", entry.ID, entry.Value, entry.Date)
	return models.FromDomainEntry(entry), nil
}

// Remove удаляет запись
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entryRepo.ErrEntryNotFound) {
			s.logger.Warn("Remove: entry id=%s not found", id)
			return ErrEntryNotFound
		}
		s.logger.Error("Remove: repository error for entry id=%s: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Remove: entry id=%s removed", id)
	return nil
}

func inRange(date string, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return false
	}
	if start != nil && d.Before(start.Truncate(24*time.Hour)) {
		return false
	}
	if end != nil && d.After(end.Truncate(24*time.Hour)) {
		return false
	}
	return true
}
