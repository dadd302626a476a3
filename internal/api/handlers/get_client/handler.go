package get_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/clients"
)

const msgClientNotFound = "клиент не найден"

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	result, err := h.service.Get(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id} - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/{id} - Failed to get client: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id} - Client retrieved successfully: client_id=%s, packages=%d", clientID, len(result.Packages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
