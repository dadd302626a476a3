package txmanager

import (
	"context"
	"sync"
)

// Manager сериализует составные операции записи внутри процесса
// Атомарность одного ключа обеспечивает хранилище; Manager нужен,
// когда операция читает несколько ключей и пишет по результатам проверки
type Manager struct {
	mu sync.Mutex
}

// New создает новый Manager
func New() *Manager {
	return &Manager{}
}

// Do выполняет fn эксклюзивно
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
