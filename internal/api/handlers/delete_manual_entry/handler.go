package delete_manual_entry

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/entries"
)

const msgEntryNotFound = "запись не найдена"

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

// Handle DELETE /api/v1/manual-entries/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Remove(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, entries.ErrEntryNotFound):
			h.logger.Warn("DELETE /manual-entries/{id} - Entry not found: entry_id=%s", id)
			handlers.RespondNotFound(w, msgEntryNotFound)

		default:
			h.logger.Error("DELETE /manual-entries/{id} - Failed to delete entry: entry_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /manual-entries/{id} - Entry deleted successfully: entry_id=%s", id)
	handlers.RespondNoContent(w)
}
