package create_fixed_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/fixedschedules"
	"github.com/m04kA/SMC-StudioService/internal/service/fixedschedules/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные шаблона"
	msgClientNotFound      = "клиент не найден"
	msgUnknownProfessional = "неизвестный профессионал"
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

// Handle POST /api/v1/fixed-schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fixed-schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, fixedschedules.ErrClientNotFound):
			h.logger.Warn("POST /fixed-schedules - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, fixedschedules.ErrUnknownProfessional):
			h.logger.Warn("POST /fixed-schedules - Unknown professional: professional=%s", req.Professional)
			handlers.RespondBadRequest(w, msgUnknownProfessional)

		case errors.Is(err, fixedschedules.ErrInvalidInput):
			h.logger.Warn("POST /fixed-schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /fixed-schedules - Failed to create schedule: client_id=%s, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fixed-schedules - Schedule created successfully: schedule_id=%s, client_id=%s", result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
