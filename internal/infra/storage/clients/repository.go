package clients

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
)

// Repository коллекция клиентов под ключом "clients"
type Repository struct {
	store *kv.Store
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(store *kv.Store) *Repository {
	return &Repository{store: store}
}

// GetAll возвращает всех клиентов
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	list, err := kv.LoadSlice[*domain.Client](ctx, r.store, domain.KeyClients)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - load: %v", ErrStore, err)
	}
	out := make([]*domain.Client, 0, len(list))
	for _, c := range list {
		if c == nil {
			continue
		}
		normalize(c)
		out = append(out, c)
	}
	return out, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrClientNotFound
}

// Create добавляет клиента
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	normalize(client)
	_, err := kv.Update(ctx, r.store, domain.KeyClients, func(current []*domain.Client) ([]*domain.Client, error) {
		for _, c := range current {
			if c != nil && c.ID == client.ID {
				return nil, ErrClientExists
			}
		}
		return append(current, client), nil
	})
	if err != nil {
		return nil, wrapStoreErr("Create", err)
	}
	return client, nil
}

// Update атомарно изменяет клиента; ошибка из fn отменяет запись
func (r *Repository) Update(ctx context.Context, id string, fn func(c *domain.Client) error) (*domain.Client, error) {
	var updated *domain.Client
	_, err := kv.Update(ctx, r.store, domain.KeyClients, func(current []*domain.Client) ([]*domain.Client, error) {
		for _, c := range current {
			if c == nil || c.ID != id {
				continue
			}
			normalize(c)
			if err := fn(c); err != nil {
				return nil, err
			}
			updated = c
			return current, nil
		}
		return nil, ErrClientNotFound
	})
	if err != nil {
		return nil, wrapStoreErr("Update", err)
	}
	return updated, nil
}

// Delete удаляет клиента; его сессии остаются в хранилище
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := kv.Update(ctx, r.store, domain.KeyClients, func(current []*domain.Client) ([]*domain.Client, error) {
		out := make([]*domain.Client, 0, len(current))
		found := false
		for _, c := range current {
			if c == nil {
				continue
			}
			if c.ID == id {
				found = true
				continue
			}
			out = append(out, c)
		}
		if !found {
			return nil, ErrClientNotFound
		}
		return out, nil
	})
	if err != nil {
		return wrapStoreErr("Delete", err)
	}
	return nil
}

func normalize(c *domain.Client) {
	if c.Packages == nil {
		c.Packages = []*domain.Package{}
	}
	pkgs := c.Packages[:0]
	for _, p := range c.Packages {
		if p != nil {
			pkgs = append(pkgs, p)
		}
	}
	c.Packages = pkgs
}

func wrapStoreErr(op string, err error) error {
	if kv.IsStorageError(err) {
		return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
	}
	return err
}
