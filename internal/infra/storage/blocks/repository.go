package blocks

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
)

// Repository заблокированные интервалы: профессионал -> список интервалов
type Repository struct {
	store *kv.Store
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(store *kv.Store) *Repository {
	return &Repository{store: store}
}

// Get возвращает интервалы профессионала на дату
func (r *Repository) Get(ctx context.Context, date, professional string) ([]domain.BlockedInterval, error) {
	all, err := kv.LoadMap[[]domain.BlockedInterval](ctx, r.store, domain.KeyBlocked)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - load: %v", ErrStore, err)
	}
	out := make([]domain.BlockedInterval, 0)
	for _, b := range all[professional] {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

// Replace заменяет интервалы профессионала на дату
func (r *Repository) Replace(ctx context.Context, date, professional string, intervals []domain.BlockedInterval) error {
	_, err := kv.Update(ctx, r.store, domain.KeyBlocked, func(current map[string][]domain.BlockedInterval) (map[string][]domain.BlockedInterval, error) {
		if current == nil {
			current = map[string][]domain.BlockedInterval{}
		}
		kept := make([]domain.BlockedInterval, 0, len(current[professional])+len(intervals))
		for _, b := range current[professional] {
			if b.Date != date {
				kept = append(kept, b)
			}
		}
		for _, b := range intervals {
			b.Date = date
			kept = append(kept, b)
		}
		if len(kept) == 0 {
			delete(current, professional)
		} else {
			current[professional] = kept
		}
		return current, nil
	})
	if err != nil {
		return fmt.Errorf("%w: Replace - update: %v", ErrStore, err)
	}
	return nil
}

// DeleteBefore удаляет интервалы с датой раньше cutoff (YYYY-MM-DD)
func (r *Repository) DeleteBefore(ctx context.Context, cutoff string) (int, error) {
	removed := 0
	_, err := kv.Update(ctx, r.store, domain.KeyBlocked, func(current map[string][]domain.BlockedInterval) (map[string][]domain.BlockedInterval, error) {
		if current == nil {
			current = map[string][]domain.BlockedInterval{}
		}
		for prof, list := range current {
			kept := list[:0]
			for _, b := range list {
				if b.Date < cutoff {
					removed++
					continue
				}
				kept = append(kept, b)
			}
			if len(kept) == 0 {
				delete(current, prof)
			} else {
				current[prof] = kept
			}
		}
		return current, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - update: %v", ErrStore, err)
	}
	return removed, nil
}
