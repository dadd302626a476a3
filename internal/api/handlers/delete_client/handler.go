package delete_client

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

// Handle DELETE /api/v1/clients/{clientId}
// Сессии клиента не удаляются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	if err := h.service.Delete(r.Context(), clientID); err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("DELETE /clients/{id} - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("DELETE /clients/{id} - Failed to delete client: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted successfully: client_id=%s", clientID)
	handlers.RespondNoContent(w)
}
