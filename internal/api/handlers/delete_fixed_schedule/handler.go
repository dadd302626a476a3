package delete_fixed_schedule

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

// Handle DELETE /api/v1/fixed-schedules/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, fixedschedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /fixed-schedules/{id} - Schedule not found: schedule_id=%s", id)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("DELETE /fixed-schedules/{id} - Failed to delete schedule: schedule_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /fixed-schedules/{id} - Schedule deleted successfully: schedule_id=%s", id)
	handlers.RespondNoContent(w)
}
