package entries

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
)

// Repository ручные финансовые записи под ключом "manual_entries"
type Repository struct {
	store *kv.Store
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(store *kv.Store) *Repository {
	return &Repository{store: store}
}

// GetAll возвращает все записи
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ManualEntry, error) {
	list, err := kv.LoadSlice[*domain.ManualEntry](ctx, r.store, domain.KeyManualEntries)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - load: %v", ErrStore, err)
	}
	out := make([]*domain.ManualEntry, 0, len(list))
	for _, e := range list {
		if e != nil {
			out = append(out, e)
		}
	}
	return out, nil
}

// Create добавляет запись
func (r *Repository) Create(ctx context.Context, entry *domain.ManualEntry) (*domain.ManualEntry, error) {
	_, err := kv.Update(ctx, r.store, domain.KeyManualEntries, func(current []*domain.ManualEntry) ([]*domain.ManualEntry, error) {
		return append(current, entry), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Create - update: %v", ErrStore, err)
	}
	return entry, nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := kv.Update(ctx, r.store, domain.KeyManualEntries, func(current []*domain.ManualEntry) ([]*domain.ManualEntry, error) {
		out := make([]*domain.ManualEntry, 0, len(current))
		found := false
		for _, e := range current {
			if e == nil {
				continue
			}
			if e.ID == id {
				found = true
				continue
			}
			out = append(out, e)
		}
		if !found {
			return nil, ErrEntryNotFound
		}
		return out, nil
	})
	if err != nil {
		if kv.IsStorageError(err) {
			return fmt.Errorf("%w: Delete: %v", ErrStore, err)
		}
		return err
	}
	return nil
}
