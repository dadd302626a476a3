package get_blocks

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/service/blocks"
)

const (
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/professionals/{professional}/blocks/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professional := vars["professional"]

	date, err := handlers.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("GET /professionals/{p}/blocks/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	intervals, err := h.service.Get(r.Context(), date, professional)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrUnknownProfessional):
			h.logger.Warn("GET /professionals/{p}/blocks/{date} - Unknown professional: professional=%s", professional)
			handlers.RespondNotFound(w, msgUnknownProfessional)

		default:
			h.logger.Error("GET /professionals/{p}/blocks/{date} - Failed to get blocks: professional=%s, error=%v", professional, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if intervals == nil {
		intervals = []domain.BlockedInterval{}
	}
	h.logger.Info("GET /professionals/{p}/blocks/{date} - Blocks retrieved: professional=%s, date=%s, count=%d",
		professional, vars["date"], len(intervals))
	handlers.RespondJSON(w, http.StatusOK, intervals)
}
