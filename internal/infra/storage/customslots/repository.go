package customslots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
)

// Repository дополнительные слоты по ключу "<date>_<professional>"
type Repository struct {
	store *kv.Store
}

// NewRepository создает новый экземпляр репозитория дополнительных слотов
func NewRepository(store *kv.Store) *Repository {
	return &Repository{store: store}
}

// Get возвращает дополнительные слоты профессионала на дату
func (r *Repository) Get(ctx context.Context, date, professional string) ([]string, error) {
	all, err := kv.LoadMap[[]string](ctx, r.store, domain.KeyCustomSlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - load: %v", ErrStore, err)
	}
	slots := all[domain.CustomSlotsKey(date, professional)]
	if slots == nil {
		return []string{}, nil
	}
	return slots, nil
}

// Set заменяет набор слотов; пустой набор удаляет запись
func (r *Repository) Set(ctx context.Context, date, professional string, slots []string) error {
	key := domain.CustomSlotsKey(date, professional)
	_, err := kv.Update(ctx, r.store, domain.KeyCustomSlots, func(current map[string][]string) (map[string][]string, error) {
		if current == nil {
			current = map[string][]string{}
		}
		if len(slots) == 0 {
			delete(current, key)
		} else {
			current[key] = slots
		}
		return current, nil
	})
	if err != nil {
		return fmt.Errorf("%w: Set - update: %v", ErrStore, err)
	}
	return nil
}

// DeleteBefore удаляет наборы слотов с датой раньше cutoff (YYYY-MM-DD)
func (r *Repository) DeleteBefore(ctx context.Context, cutoff string) (int, error) {
	removed := 0
	_, err := kv.Update(ctx, r.store, domain.KeyCustomSlots, func(current map[string][]string) (map[string][]string, error) {
		if current == nil {
			current = map[string][]string{}
		}
		for key := range current {
			date, _, ok := strings.Cut(key, "_")
			if ok && date < cutoff {
				delete(current, key)
				removed++
			}
		}
		return current, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - update: %v", ErrStore, err)
	}
	return removed, nil
}
