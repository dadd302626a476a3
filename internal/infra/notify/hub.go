package notify

import (
	"context"
	"sync"
	"time"
)

// Event уведомление об изменённом ключе хранилища
type Event struct {
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Hub рассылает события всем подписчикам процесса
// Медленный подписчик теряет события, а не блокирует запись
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	now    func() time.Time
	logger Logger
}

// NewHub создает пустой Hub
func NewHub(logger Logger) *Hub {
	return &Hub{
		subs:   make(map[int]chan Event),
		now:    time.Now,
		logger: logger,
	}
}

// Publish рассылает ключ подписчикам
func (h *Hub) Publish(_ context.Context, key string) {
	ev := Event{Key: key, At: h.now()}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			h.logger.Warn("Hub.Publish: subscriber=%d is full, dropping key=%s", id, key)
		}
	}
}

// Subscribe регистрирует подписчика с буфером size
// Возвращённая функция отписывает и закрывает канал
func (h *Hub) Subscribe(size int) (<-chan Event, func()) {
	if size <= 0 {
		size = 1
	}
	ch := make(chan Event, size)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers количество активных подписчиков
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
