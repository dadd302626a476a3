package update_custom_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/service/customslots"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlots        = "некорректное время в списке, ожидается HH:MM"
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

// Handle PUT /api/v1/professionals/{professional}/custom-slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professional := vars["professional"]

	date, err := handlers.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("PUT /professionals/{p}/custom-slots/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpdateCustomSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{p}/custom-slots/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slots, err := h.service.Replace(r.Context(), date, professional, req.Slots)
	if err != nil {
		switch {
		case errors.Is(err, customslots.ErrUnknownProfessional):
			h.logger.Warn("PUT /professionals/{p}/custom-slots/{date} - Unknown professional: professional=%s", professional)
			handlers.RespondNotFound(w, msgUnknownProfessional)

		case errors.Is(err, customslots.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{p}/custom-slots/{date} - Invalid slots: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		default:
			h.logger.Error("PUT /professionals/{p}/custom-slots/{date} - Failed to replace slots: professional=%s, error=%v", professional, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if slots == nil {
		slots = []string{}
	}
	h.logger.Info("PUT /professionals/{p}/custom-slots/{date} - Slots replaced: professional=%s, date=%s, count=%d",
		professional, vars["date"], len(slots))
	handlers.RespondJSON(w, http.StatusOK, &CustomSlotsResponse{
		Date:         vars["date"],
		Professional: professional,
		Slots:        slots,
	})
}
