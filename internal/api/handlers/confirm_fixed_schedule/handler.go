package confirm_fixed_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	createSessionHandler "github.com/m04kA/SMC-StudioService/internal/api/handlers/create_session"
	confirmFixedSchedule "github.com/m04kA/SMC-StudioService/internal/usecase/confirm_fixed_schedule"
	createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
)

const (
	msgScheduleNotFound = "шаблон не найден"
	msgScheduleInactive = "шаблон выключен"
	msgClientNotFound   = "клиент шаблона не найден"
	msgAlreadyConfirmed = "сессия на эту неделю уже создана"
	msgSlotNotAvailable = "сессия не помещается в выбранное время"
)

type Handler struct {
	useCase ConfirmFixedScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmFixedScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/fixed-schedules/{id}/confirm
// Создает сессию на ближайший день недели шаблона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.useCase.Execute(r.Context(), &confirmFixedSchedule.Request{ScheduleID: id})
	if err != nil {
		switch {
		case errors.Is(err, confirmFixedSchedule.ErrScheduleNotFound):
			h.logger.Warn("POST /fixed-schedules/{id}/confirm - Schedule not found: schedule_id=%s", id)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, confirmFixedSchedule.ErrClientNotFound):
			h.logger.Warn("POST /fixed-schedules/{id}/confirm - Client not found: schedule_id=%s", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, confirmFixedSchedule.ErrScheduleInactive):
			h.logger.Warn("POST /fixed-schedules/{id}/confirm - Schedule inactive: schedule_id=%s", id)
			handlers.RespondConflict(w, msgScheduleInactive)

		case errors.Is(err, confirmFixedSchedule.ErrAlreadyConfirmed):
			h.logger.Warn("POST /fixed-schedules/{id}/confirm - Already confirmed: schedule_id=%s", id)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, createSession.ErrSlotNotAvailable):
			h.logger.Warn("POST /fixed-schedules/{id}/confirm - Slot not available: schedule_id=%s", id)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /fixed-schedules/{id}/confirm - Failed to confirm schedule: schedule_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fixed-schedules/{id}/confirm - Schedule confirmed: schedule_id=%s, session_id=%s", id, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, createSessionHandler.FromUseCaseResponse(result))
}
