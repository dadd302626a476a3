package get_session_number

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
)

const msgMissingSessionID = "ID сессии обязателен"

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

// Handle GET /api/v1/sessions/{sessionId}/number
// Для неизвестной сессии номер "-", а не 404
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		h.logger.Warn("GET /sessions/{id}/number - Missing session ID")
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return
	}

	result, err := h.service.Number(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /sessions/{id}/number - Failed to number session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/{id}/number - Number computed: session_id=%s, number=%s", sessionID, result.Number)
	handlers.RespondJSON(w, http.StatusOK, result)
}
