package list_fixed_schedules

import (
	"net/http"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/fixed-schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /fixed-schedules - Failed to list schedules: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fixed-schedules - Schedules retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
