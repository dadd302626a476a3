package add_manual_entry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/entries"
	"github.com/m04kA/SMC-StudioService/internal/service/entries/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	service EntryService
	logger  Logger
}

func NewHandler(service EntryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/manual-entries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /manual-entries - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entries.ErrInvalidInput):
			h.logger.Warn("POST /manual-entries - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /manual-entries - Failed to add entry: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /manual-entries - Entry added successfully: entry_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
