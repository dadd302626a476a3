package complete_session

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

// Handle PATCH /api/v1/sessions/{sessionId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("PATCH /sessions/{id}/complete - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	result, err := h.service.Complete(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/complete - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidTransition):
			h.logger.Warn("PATCH /sessions/{id}/complete - Invalid transition: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /sessions/{id}/complete - Failed to complete session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/complete - Session completed successfully: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
