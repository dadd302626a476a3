package update_blocks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/service/blocks"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIntervals    = "некорректный интервал: ожидается HH:MM и начало раньше конца"
	msgUnknownProfessional = "неизвестный профессионал"
)

type Handler struct {
	service BlocksService
	logger  Logger
}

func NewHandler(service BlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{professional}/blocks/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professional := vars["professional"]

	date, err := handlers.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("PUT /professionals/{p}/blocks/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpdateBlocksRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{p}/blocks/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	intervals, err := h.service.Replace(r.Context(), date, professional, req.Intervals)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrUnknownProfessional):
			h.logger.Warn("PUT /professionals/{p}/blocks/{date} - Unknown professional: professional=%s", professional)
			handlers.RespondNotFound(w, msgUnknownProfessional)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{p}/blocks/{date} - Invalid intervals: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIntervals)

		default:
			h.logger.Error("PUT /professionals/{p}/blocks/{date} - Failed to replace blocks: professional=%s, error=%v", professional, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if intervals == nil {
		intervals = []domain.BlockedInterval{}
	}
	h.logger.Info("PUT /professionals/{p}/blocks/{date} - Blocks replaced: professional=%s, date=%s, count=%d",
		professional, vars["date"], len(intervals))
	handlers.RespondJSON(w, http.StatusOK, intervals)
}
