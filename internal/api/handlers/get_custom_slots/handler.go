package get_custom_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/customslots"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownProfessional = "неизвестный профессионал"
)

type Handler struct {
	service CustomSlotsService
	logger  Logger
}

func NewHandler(service CustomSlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professional}/custom-slots/{date}
// Пустой список означает, что действует стандартная сетка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professional := vars["professional"]

	date, err := handlers.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("GET /professionals/{p}/custom-slots/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.Get(r.Context(), date, professional)
	if err != nil {
		switch {
		case errors.Is(err, customslots.ErrUnknownProfessional):
			h.logger.Warn("GET /professionals/{p}/custom-slots/{date} - Unknown professional: professional=%s", professional)
			handlers.RespondNotFound(w, msgUnknownProfessional)

		default:
			h.logger.Error("GET /professionals/{p}/custom-slots/{date} - Failed to get slots: professional=%s, error=%v", professional, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if slots == nil {
		slots = []string{}
	}
	h.logger.Info("GET /professionals/{p}/custom-slots/{date} - Slots retrieved: professional=%s, date=%s, count=%d",
		professional, vars["date"], len(slots))
	handlers.RespondJSON(w, http.StatusOK, &CustomSlotsResponse{
		Date:         vars["date"],
		Professional: professional,
		Slots:        slots,
	})
}
