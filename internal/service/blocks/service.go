package blocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// Interval блокировка в запросе на замену
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Service заблокированные интервалы профессионалов
type Service struct {
	repo   BlocksRepository
	roster domain.Roster
	logger Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo BlocksRepository, roster domain.Roster, logger Logger) *Service {
	return &Service{repo: repo, roster: roster, logger: logger}
}

// Get интервалы профессионала на дату
func (s *Service) Get(ctx context.Context, date time.Time, professional string) ([]domain.BlockedInterval, error) {
	if !s.roster.Has(professional) {
		s.logger.Warn("Get: unknown professional=%s", professional)
		return nil, ErrUnknownProfessional
	}
	day := date.Format(domain.DateFormat)

	list, err := s.repo.Get(ctx, day, professional)
	if err != nil {
		s.logger.Error("Get: repository error for date=%s, professional=%s: %v", day, professional, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Replace заменяет интервалы профессионала на дату; пустой список снимает блокировки
func (s *Service) Replace(ctx context.Context, date time.Time, professional string, intervals []Interval) ([]domain.BlockedInterval, error) {
	if !s.roster.Has(professional) {
		s.logger.Warn("Replace: unknown professional=%s", professional)
		return nil, ErrUnknownProfessional
	}
	day := date.Format(domain.DateFormat)

	out := make([]domain.BlockedInterval, 0, len(intervals))
	for _, in := range intervals {
		start, err := types.NewTimeStringFromString(in.Start)
		if err != nil {
			s.logger.Warn("Replace: invalid start=%q: %v", in.Start, err)
			return nil, fmt.Errorf("%w: start %q", ErrInvalidInput, in.Start)
		}
		end, err := types.NewTimeStringFromString(in.End)
		if err != nil {
			s.logger.Warn("Replace: invalid end=%q: %v", in.End, err)
			return nil, fmt.Errorf("%w: end %q", ErrInvalidInput, in.End)
		}
		if !start.IsBefore(end) {
			s.logger.Warn("Replace: start=%s is not before end=%s", start, end)
			return nil, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidInput, start, end)
		}
		out = append(out, domain.BlockedInterval{Date: day, Start: start.String(), End: end.String()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	if err := s.repo.Replace(ctx, day, professional, out); err != nil {
		s.logger.Error("Replace: repository error for date=%s, professional=%s: %v", day, professional, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: date=%s professional=%s intervals=%d", day, professional, len(out))
	return out, nil
}
