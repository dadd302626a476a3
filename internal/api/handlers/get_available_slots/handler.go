package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-StudioService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownProfessional = "неизвестный профессионал"
	msgInvalidPeriod       = "неизвестная длительность сессии"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professional}/available-slots
// Query params: date (required, YYYY-MM-DD), period (опционально, по умолчанию 1h)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professional := mux.Vars(r)["professional"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{p}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(professional, dateStr, r.URL.Query().Get("period"))
	if err != nil {
		h.logger.Warn("GET /professionals/{p}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnknownProfessional):
			h.logger.Warn("GET /professionals/{p}/available-slots - Unknown professional: professional=%s", professional)
			handlers.RespondNotFound(w, msgUnknownProfessional)

		case errors.Is(err, getAvailableSlots.ErrInvalidPeriod):
			h.logger.Warn("GET /professionals/{p}/available-slots - Invalid period: period=%s", useCaseReq.Period)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{p}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /professionals/{p}/available-slots - Failed to get slots: professional=%s, date=%s, error=%v",
				professional, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{p}/available-slots - Slots retrieved successfully: professional=%s, date=%s, slots_count=%d",
		result.Professional, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
