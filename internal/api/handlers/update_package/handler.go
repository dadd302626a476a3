package update_package

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
	msgPackageNotFound    = "пакет не найден"
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

// Handle PUT /api/v1/clients/{clientId}/packages/{packageId}
// Обновляет только переданные поля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID := vars["clientId"]
	packageID := vars["packageId"]

	var req models.UpdatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id}/packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePackage(r.Context(), clientID, packageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PUT /clients/{id}/packages/{id} - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, clients.ErrPackageNotFound):
			h.logger.Warn("PUT /clients/{id}/packages/{id} - Package not found: client_id=%s, package_id=%s", clientID, packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("PUT /clients/{id}/packages/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /clients/{id}/packages/{id} - Failed to update package: client_id=%s, package_id=%s, error=%v",
				clientID, packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients/{id}/packages/{id} - Package updated successfully: client_id=%s, package_id=%s", clientID, packageID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
