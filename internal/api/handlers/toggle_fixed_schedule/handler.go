package toggle_fixed_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/fixedschedules"
)

const msgScheduleNotFound = "шаблон не найден"

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

// Handle PATCH /api/v1/fixed-schedules/{id}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, fixedschedules.ErrScheduleNotFound):
			h.logger.Warn("PATCH /fixed-schedules/{id}/toggle - Schedule not found: schedule_id=%s", id)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("PATCH /fixed-schedules/{id}/toggle - Failed to toggle schedule: schedule_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /fixed-schedules/{id}/toggle - Schedule toggled: schedule_id=%s, active=%t", id, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
