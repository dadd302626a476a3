package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store типизированный доступ к ключам хранилища
// Каждая запись сохраняет значение и уведомляет подписчиков об изменённом ключе
type Store struct {
	backend   Backend
	publisher Publisher
	metrics   MetricsCollector
	logger    Logger
}

// NewStore создает Store; publisher и metrics могут быть nil
func NewStore(backend Backend, publisher Publisher, metrics MetricsCollector, logger Logger) *Store {
	return &Store{
		backend:   backend,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Load читает JSON значение ключа в dst
// Возвращает false, если ключа нет или значение повреждено (dst при этом не меняется)
func (s *Store) Load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("Store.Load: corrupt value for key=%s, using empty default: %v", key, err)
		return false, nil
	}
	return true, nil
}

// Commit сохраняет значение ключа и уведомляет подписчиков
func (s *Store) Commit(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrEncode, key, err)
	}

	start := time.Now()
	err = s.backend.Set(ctx, key, raw)
	s.observe(key, err, start)
	if err != nil {
		return err
	}

	s.notify(ctx, key)
	return nil
}

// Delete удаляет ключ и уведомляет подписчиков
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.backend.Delete(ctx, key)
	s.observe(key, err, start)
	if err != nil {
		return err
	}

	s.notify(ctx, key)
	return nil
}

// Keys ключи с префиксом
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.backend.Keys(ctx, prefix)
}

// Update атомарно изменяет JSON значение ключа
// Ошибка из fn отменяет запись, подписчики не уведомляются
func Update[T any](ctx context.Context, s *Store, key string, fn func(current T) (T, error)) (T, error) {
	var result T
	changed := false

	start := time.Now()
	err := s.backend.Update(ctx, key, func(raw []byte, exists bool) ([]byte, error) {
		var current T
		if exists && len(raw) > 0 {
			if err := json.Unmarshal(raw, &current); err != nil {
				s.logger.Warn("Store.Update: corrupt value for key=%s, using empty default: %v", key, err)
				var zero T
				current = zero
			}
		}

		next, err := fn(current)
		if err != nil {
			return nil, err
		}

		encoded, err := json.Marshal(next)
		if err != nil {
			return nil, fmt.Errorf("%w: key=%s: %v", ErrEncode, key, err)
		}
		result = next
		changed = true
		return encoded, nil
	})
	if changed || err != nil {
		s.observe(key, err, start)
	}
	if err != nil {
		var zero T
		return zero, err
	}

	s.notify(ctx, key)
	return result, nil
}

// LoadSlice читает JSON массив, отсутствие ключа или битые данные дают пустой срез
func LoadSlice[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var out []T
	ok, err := s.Load(ctx, key, &out)
	if err != nil {
		return nil, err
	}
	if !ok || out == nil {
		return []T{}, nil
	}
	return out, nil
}

// LoadMap читает JSON объект, отсутствие ключа или битые данные дают пустую карту
func LoadMap[V any](ctx context.Context, s *Store, key string) (map[string]V, error) {
	var out map[string]V
	ok, err := s.Load(ctx, key, &out)
	if err != nil {
		return nil, err
	}
	if !ok || out == nil {
		return map[string]V{}, nil
	}
	return out, nil
}

func (s *Store) observe(key string, err error, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveStoreCommit(key, err, time.Since(start))
	}
}

func (s *Store) notify(ctx context.Context, key string) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, key)
	}
}
