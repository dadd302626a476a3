package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"

	subscriberBuffer = 32
)

type Handler struct {
	hub       Subscriber
	keepAlive time.Duration
	logger    Logger
}

func NewHandler(hub Subscriber, keepAlive time.Duration, logger Logger) *Handler {
	return &Handler{
		hub:       hub,
		keepAlive: keepAlive,
		logger:    logger,
	}
}

// Handle GET /api/v1/events
// Server-Sent Events: одно событие "change" на каждую запись ключа хранилища
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /events - Streaming unsupported")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	// поток живет дольше WriteTimeout сервера
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	events, unsubscribe := h.hub.Subscribe(subscriberBuffer)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /events - Subscriber connected: remote=%s", r.RemoteAddr)

	var tick <-chan time.Time
	if h.keepAlive > 0 {
		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /events - Subscriber disconnected: remote=%s", r.RemoteAddr)
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				h.logger.Error("GET /events - Failed to encode event: key=%s, error=%v", ev.Key, err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload); err != nil {
				h.logger.Warn("GET /events - Write failed: %v", err)
				return
			}
			flusher.Flush()

		case <-tick:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
