package kv

import (
	"context"
	"database/sql"
	"time"
)

// Backend хранилище сырых значений по ключу
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys ключи с указанным префиксом в порядке возрастания
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Update атомарный read-modify-write одного ключа
	// fn получает текущее значение (nil, false если ключа нет)
	Update(ctx context.Context, key string, fn func(current []byte, exists bool) ([]byte, error)) error
}

// Publisher получатель уведомлений об изменённых ключах
type Publisher interface {
	Publish(ctx context.Context, key string)
}

// MetricsCollector метрики операций записи
type MetricsCollector interface {
	ObserveStoreCommit(key string, err error, duration time.Duration)
}

// DB интерфейс подключения к PostgreSQL
// Поддерживает *sql.DB
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
