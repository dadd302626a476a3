package get_pending_fixed_schedules

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

// Handle GET /api/v1/fixed-schedules/pending
// Активные шаблоны без сессии на ближайший день недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Pending(r.Context())
	if err != nil {
		h.logger.Error("GET /fixed-schedules/pending - Failed to get pending schedules: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /fixed-schedules/pending - Pending schedules retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
