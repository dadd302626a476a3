package list_sessions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/sessions"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректный фильтр: неизвестный статус или начало периода позже конца"
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

// Handle GET /api/v1/sessions
// Query params: startDate, endDate, professional, clientId, status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var query ListSessionsQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /sessions - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	serviceReq, err := query.ToServiceRequest()
	if err != nil {
		h.logger.Warn("GET /sessions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /sessions - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /sessions - Failed to list sessions: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions - Sessions retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
