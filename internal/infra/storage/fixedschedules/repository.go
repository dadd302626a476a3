package fixedschedules

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
)

// Repository шаблоны еженедельных записей под ключом "horarios_fixos"
type Repository struct {
	store *kv.Store
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(store *kv.Store) *Repository {
	return &Repository{store: store}
}

// GetAll возвращает все шаблоны
func (r *Repository) GetAll(ctx context.Context) ([]*domain.FixedSchedule, error) {
	list, err := kv.LoadSlice[*domain.FixedSchedule](ctx, r.store, domain.KeyFixedSchedules)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - load: %v", ErrStore, err)
	}
	out := make([]*domain.FixedSchedule, 0, len(list))
	for _, f := range list {
		if f != nil {
			out = append(out, f)
		}
	}
	return out, nil
}

// GetByID получает шаблон по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.FixedSchedule, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range all {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, ErrScheduleNotFound
}

// Create добавляет шаблон
func (r *Repository) Create(ctx context.Context, schedule *domain.FixedSchedule) (*domain.FixedSchedule, error) {
	_, err := kv.Update(ctx, r.store, domain.KeyFixedSchedules, func(current []*domain.FixedSchedule) ([]*domain.FixedSchedule, error) {
		return append(current, schedule), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Create - update: %v", ErrStore, err)
	}
	return schedule, nil
}

// Update атомарно изменяет шаблон
func (r *Repository) Update(ctx context.Context, id string, fn func(f *domain.FixedSchedule) error) (*domain.FixedSchedule, error) {
	var updated *domain.FixedSchedule
	_, err := kv.Update(ctx, r.store, domain.KeyFixedSchedules, func(current []*domain.FixedSchedule) ([]*domain.FixedSchedule, error) {
		for _, f := range current {
			if f == nil || f.ID != id {
				continue
			}
			if err := fn(f); err != nil {
				return nil, err
			}
			updated = f
			return current, nil
		}
		return nil, ErrScheduleNotFound
	})
	if err != nil {
		return nil, wrapStoreErr("Update", err)
	}
	return updated, nil
}

// Delete удаляет шаблон
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := kv.Update(ctx, r.store, domain.KeyFixedSchedules, func(current []*domain.FixedSchedule) ([]*domain.FixedSchedule, error) {
		out := make([]*domain.FixedSchedule, 0, len(current))
		found := false
		for _, f := range current {
			if f == nil {
				continue
			}
			if f.ID == id {
				found = true
				continue
			}
			out = append(out, f)
		}
		if !found {
			return nil, ErrScheduleNotFound
		}
		return out, nil
	})
	if err != nil {
		return wrapStoreErr("Delete", err)
	}
	return nil
}

func wrapStoreErr(op string, err error) error {
	if kv.IsStorageError(err) {
		return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
	}
	return err
}
