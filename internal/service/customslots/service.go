package customslots

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Service дополнительные слоты, добавленные вручную поверх сгенерированных
type Service struct {
	repo   SlotsRepository
	roster domain.Roster
	logger Logger
}

// NewService создает новый экземпляр сервиса дополнительных слотов
func NewService(repo SlotsRepository, roster domain.Roster, logger Logger) *Service {
	return &Service{repo: repo, roster: roster, logger: logger}
}

// Get возвращает слоты профессионала на дату
func (s *Service) Get(ctx context.Context, date time.Time, professional string) ([]string, error) {
	if !s.roster.Has(professional) {
		s.logger.Warn("Get: unknown professional=%s", professional)
		return nil, ErrUnknownProfessional
	}
	day := date.Format(domain.DateFormat)

	slots, err := s.repo.Get(ctx, day, professional)
	if err != nil {
		s.logger.Error("Get: repository error for date=%s, professional=%s: %v", day, professional, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return slots, nil
}

// Replace заменяет набор слотов; времена проверяются, дубликаты убираются, результат сортируется
func (s *Service) Replace(ctx context.Context, date time.Time, professional string, slots []string) ([]string, error) {
	if !s.roster.Has(professional) {
		s.logger.Warn("Replace: unknown professional=%s", professional)
		return nil, ErrUnknownProfessional
	}

	normalized, err := Normalize(slots)
	if err != nil {
		s.logger.Warn("Replace: invalid slots for professional=%s: %v", professional, err)
		return nil, err
	}

	day := date.Format(domain.DateFormat)
	if err := s.repo.Set(ctx, day, professional, normalized); err != nil {
		s.logger.Error("Replace: repository error for date=%s, professional=%s: %v", day, professional, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: date=%s professional=%s slots=%d", day, professional, len(normalized))
	return normalized, nil
}

// Normalize приводит времена к HH:MM, убирает дубликаты и сортирует
func Normalize(slots []string) ([]string, error) {
	seen := make(map[int]bool, len(slots))
	minutes := make([]int, 0, len(slots))
	for _, raw := range slots {
		ts, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: slot %q: %v", ErrInvalidInput, raw, err)
		}
		m, err := ts.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: slot %q: %v", ErrInvalidInput, raw, err)
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	out := make([]string, 0, len(minutes))
	for _, m := range minutes {
		out = append(out, types.MustFromMinutes(m).String())
	}
	return out, nil
}
