package get_valid_periods

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	getValidPeriods "github.com/m04kA/SMC-StudioService/internal/usecase/get_valid_periods"
)

const (
	msgMissingParams       = "дата и время обязательны"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgUnknownProfessional = "неизвестный профессионал"
)

type Handler struct {
	useCase GetValidPeriodsUseCase
	logger  Logger
}

func NewHandler(useCase GetValidPeriodsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professional}/valid-periods
// Query params: date (YYYY-MM-DD), time (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professional := mux.Vars(r)["professional"]
	dateStr := r.URL.Query().Get("date")
	at := r.URL.Query().Get("time")

	if dateStr == "" || at == "" {
		h.logger.Warn("GET /professionals/{p}/valid-periods - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(professional, dateStr, at)
	if err != nil {
		h.logger.Warn("GET /professionals/{p}/valid-periods - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getValidPeriods.ErrUnknownProfessional):
			h.logger.Warn("GET /professionals/{p}/valid-periods - Unknown professional: professional=%s", professional)
			handlers.RespondNotFound(w, msgUnknownProfessional)

		case errors.Is(err, getValidPeriods.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{p}/valid-periods - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /professionals/{p}/valid-periods - Failed to get periods: professional=%s, error=%v", professional, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{p}/valid-periods - Periods retrieved: professional=%s, date=%s, time=%s, count=%d",
		result.Professional, dateStr, at, len(result.Periods))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
