package sessions

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Repository единая коллекция сессий под ключом "sessions"
// Профессионал хранится атрибутом сессии, а не отдельным разделом
type Repository struct {
	store  *kv.Store
	logger Logger
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(store *kv.Store, logger Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// GetAll возвращает все сессии без повторов по ID
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Session, error) {
	list, err := kv.LoadSlice[*domain.Session](ctx, r.store, domain.KeySessions)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - load: %v", ErrStore, err)
	}
	return dedupe(list), nil
}

// GetByID получает сессию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrSessionNotFound
}

// List возвращает сессии, подходящие под фильтр
func (r *Repository) List(ctx context.Context, filter domain.SessionsFilter) ([]*domain.Session, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Session, 0, len(all))
	for _, s := range all {
		if filter.Match(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetByDateAndProfessional сессии профессионала на дату (все статусы)
func (r *Repository) GetByDateAndProfessional(ctx context.Context, date, professional string) ([]*domain.Session, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Session, 0)
	for _, s := range all {
		if s.Date == date && s.Professional == professional {
			out = append(out, s)
		}
	}
	return out, nil
}

// Create добавляет сессию
func (r *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	_, err := kv.Update(ctx, r.store, domain.KeySessions, func(current []*domain.Session) ([]*domain.Session, error) {
		current = dedupe(current)
		for _, s := range current {
			if s.ID == session.ID {
				return nil, ErrSessionExists
			}
		}
		return append(current, session), nil
	})
	if err != nil {
		return nil, wrapStoreErr("Create", err)
	}
	return session, nil
}

// Update атомарно изменяет сессию; ошибка из fn отменяет запись
func (r *Repository) Update(ctx context.Context, id string, fn func(s *domain.Session) error) (*domain.Session, error) {
	var updated *domain.Session
	_, err := kv.Update(ctx, r.store, domain.KeySessions, func(current []*domain.Session) ([]*domain.Session, error) {
		current = dedupe(current)
		for _, s := range current {
			if s.ID != id {
				continue
			}
			if err := fn(s); err != nil {
				return nil, err
			}
			updated = s
			return current, nil
		}
		return nil, ErrSessionNotFound
	})
	if err != nil {
		return nil, wrapStoreErr("Update", err)
	}
	return updated, nil
}

// Delete удаляет сессию и возвращает удалённую запись
func (r *Repository) Delete(ctx context.Context, id string) (*domain.Session, error) {
	var removed *domain.Session
	_, err := kv.Update(ctx, r.store, domain.KeySessions, func(current []*domain.Session) ([]*domain.Session, error) {
		current = dedupe(current)
		out := make([]*domain.Session, 0, len(current))
		for _, s := range current {
			if s.ID == id {
				removed = s
				continue
			}
			out = append(out, s)
		}
		if removed == nil {
			return nil, ErrSessionNotFound
		}
		return out, nil
	})
	if err != nil {
		return nil, wrapStoreErr("Delete", err)
	}
	return removed, nil
}

// ImportLegacyPartitions переносит сессии из старых ключей sessions_<профессионал>
// в общую коллекцию и удаляет эти ключи
// При совпадении ID побеждает запись, прочитанная последней
func (r *Repository) ImportLegacyPartitions(ctx context.Context) (int, error) {
	keys, err := r.store.Keys(ctx, domain.LegacySessionsKey(""))
	if err != nil {
		return 0, fmt.Errorf("%w: ImportLegacyPartitions - list keys: %v", ErrStore, err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	imported := make([]*domain.Session, 0)
	for _, key := range keys {
		professional := strings.TrimPrefix(key, domain.LegacySessionsKey(""))
		list, err := kv.LoadSlice[*domain.Session](ctx, r.store, key)
		if err != nil {
			return 0, fmt.Errorf("%w: ImportLegacyPartitions - load %s: %v", ErrStore, key, err)
		}
		for _, s := range list {
			if s == nil {
				continue
			}
			if s.Professional == "" {
				s.Professional = professional
			}
			imported = append(imported, s)
		}
		r.logger.Info("ImportLegacyPartitions: key=%s, sessions=%d", key, len(list))
	}

	_, err = kv.Update(ctx, r.store, domain.KeySessions, func(current []*domain.Session) ([]*domain.Session, error) {
		return dedupe(append(current, imported...)), nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: ImportLegacyPartitions - merge: %v", ErrStore, err)
	}

	for _, key := range keys {
		if err := r.store.Delete(ctx, key); err != nil {
			return 0, fmt.Errorf("%w: ImportLegacyPartitions - delete %s: %v", ErrStore, key, err)
		}
	}

	return len(imported), nil
}

// dedupe убирает повторы по ID, сохраняя позицию первой записи и данные последней
func dedupe(list []*domain.Session) []*domain.Session {
	index := make(map[string]int, len(list))
	out := make([]*domain.Session, 0, len(list))
	for _, s := range list {
		if s == nil {
			continue
		}
		if i, ok := index[s.ID]; ok {
			out[i] = s
			continue
		}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	return out
}

// wrapStoreErr оборачивает только ошибки хранилища, ошибки из fn возвращаются как есть
func wrapStoreErr(op string, err error) error {
	if kv.IsStorageError(err) {
		return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
	}
	return err
}
