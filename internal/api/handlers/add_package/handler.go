package add_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/clients"
	"github.com/m04kA/SMC-StudioService/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgClientNotFound     = "клиент не найден"
	msgUnknownPackage     = "пакета нет в каталоге"
	msgNoFreePackageID    = "у клиента нет свободных ID пакетов"
	msgInvalidInput       = "некорректные данные пакета"
)

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

// Handle POST /api/v1/clients/{clientId}/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	var req models.AddPackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/{id}/packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddPackage(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("POST /clients/{id}/packages - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, clients.ErrUnknownPackage):
			h.logger.Warn("POST /clients/{id}/packages - Unknown package: name=%s", req.Name)
			handlers.RespondBadRequest(w, msgUnknownPackage)

		case errors.Is(err, clients.ErrNoFreePackageID):
			h.logger.Warn("POST /clients/{id}/packages - No free package ID: client_id=%s", clientID)
			handlers.RespondConflict(w, msgNoFreePackageID)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients/{id}/packages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /clients/{id}/packages - Failed to add package: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/{id}/packages - Package added successfully: client_id=%s, package_id=%s", clientID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
