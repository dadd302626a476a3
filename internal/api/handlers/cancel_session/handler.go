package cancel_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/sessions"
)

const (
	msgMissingSessionID  = "ID сессии обязателен"
	msgSessionNotFound   = "сессия не найдена"
	msgInvalidTransition = "сессия уже завершена или отменена"
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

// Handle PATCH /api/v1/sessions/{sessionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	result, err := h.service.Cancel(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /sessions/{id}/cancel - Failed to cancel session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/cancel - Session cancelled successfully: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
