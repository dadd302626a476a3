package list_manual_entries

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/entries"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "начало периода позже конца"
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

// Handle GET /api/v1/manual-entries
// Query params: startDate, endDate (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var query ListEntriesQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /manual-entries - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	serviceReq, err := query.ToServiceRequest()
	if err != nil {
		h.logger.Warn("GET /manual-entries - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, entries.ErrInvalidInput):
			h.logger.Warn("GET /manual-entries - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /manual-entries - Failed to list entries: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /manual-entries - Entries retrieved successfully: count=%d, total=%.2f", len(result.Entries), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
