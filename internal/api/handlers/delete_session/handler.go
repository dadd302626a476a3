package delete_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/sessions"
)

const (
	msgMissingSessionID = "ID сессии обязателен"
	msgSessionNotFound  = "сессия не найдена"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
// Удаляет сессию любого статуса; использование пакета пересчитывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("DELETE /sessions/{id} - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	if err := h.service.Remove(r.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /sessions/{id} - Failed to remove session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session removed successfully: session_id=%s", sessionID)
	handlers.RespondNoContent(w)
}
