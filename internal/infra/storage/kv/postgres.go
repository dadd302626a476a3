package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StudioService/pkg/psqlbuilder"
)

const (
	tableName = "kv_store"
	colKey    = "key_name"
	colValue  = "value"
	colUpdate = "updated_at"
)

// PostgresBackend хранилище ключей в таблице kv_store
// Значение хранится как TEXT: битый JSON должен читаться без ошибки драйвера
type PostgresBackend struct {
	db DB
}

// NewPostgresBackend создает бэкенд поверх подключения к БД
func NewPostgresBackend(db DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := psqlbuilder.Select(colValue).
		From(tableName).
		Where(squirrel.Eq{colKey: key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - scan value: %v", ErrScanRow, err)
	}
	return []byte(value), true, nil
}

func (p *PostgresBackend) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := upsertQuery(key, value)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

func (p *PostgresBackend) Delete(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{colKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (p *PostgresBackend) Keys(ctx context.Context, prefix string) ([]string, error) {
	query, args, err := psqlbuilder.Select(colKey).
		From(tableName).
		Where(squirrel.Like{colKey: escapeLike(prefix) + "%"}).
		OrderBy(colKey).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Keys - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("%w: Keys - scan key: %v", ErrScanRow, err)
		}
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Keys - iterate rows: %v", ErrScanRow, err)
	}
	return keys, nil
}

// Update читает строку с блокировкой FOR UPDATE и записывает результат fn в той же транзакции
func (p *PostgresBackend) Update(ctx context.Context, key string, fn func(current []byte, exists bool) ([]byte, error)) (err error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: Update - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := psqlbuilder.Select(colValue).
		From(tableName).
		Where(squirrel.Eq{colKey: key}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build select query: %v", ErrBuildQuery, err)
	}

	var (
		value  string
		exists = true
	)
	scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(scanErr, sql.ErrNoRows):
		exists = false
	case scanErr != nil:
		return fmt.Errorf("%w: Update - scan value: %v", ErrScanRow, scanErr)
	}

	var current []byte
	if exists {
		current = []byte(value)
	}
	next, err := fn(current, exists)
	if err != nil {
		return err
	}

	query, args, err = upsertQuery(key, next)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Update - commit: %v", ErrTransaction, err)
	}
	return nil
}

func upsertQuery(key string, value []byte) (string, []interface{}, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(colKey, colValue, colUpdate).
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " +
			colValue + " = EXCLUDED." + colValue + ", " +
			colUpdate + " = EXCLUDED." + colUpdate).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: build upsert query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

// escapeLike экранирует спецсимволы LIKE, в ключах встречается "_"
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
