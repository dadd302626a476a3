package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты сессии, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени начала, ожидается HH:MM"
	msgClientNotFound      = "клиент не найден"
	msgUnknownProfessional = "неизвестный профессионал"
	msgFundingRequired     = "у клиента есть активные пакеты: выберите пакет или разовую оплату"
	msgAmbiguousFunding    = "нельзя одновременно выбрать пакет и разовую оплату"
	msgPackageNotActive    = "пакет не найден или просрочен"
	msgSlotNotAvailable    = "сессия не помещается в выбранное время"
	msgSessionExists       = "сессия с таким ID уже существует"
	msgInvalidInput        = "некорректные данные сессии"
)

type Handler struct {
	useCase CreateSessionUseCase
	logger  Logger
}

func NewHandler(useCase CreateSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSession.ErrClientNotFound):
			h.logger.Warn("POST /sessions - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createSession.ErrUnknownProfessional):
			h.logger.Warn("POST /sessions - Unknown professional: professional=%s", req.Professional)
			handlers.RespondBadRequest(w, msgUnknownProfessional)

		case errors.Is(err, createSession.ErrFundingModeRequired):
			h.logger.Warn("POST /sessions - Funding mode required: client_id=%s", req.ClientID)
			handlers.RespondBadRequest(w, msgFundingRequired)

		case errors.Is(err, createSession.ErrAmbiguousFunding):
			h.logger.Warn("POST /sessions - Ambiguous funding: client_id=%s, package_id=%s", req.ClientID, req.PackageID)
			handlers.RespondBadRequest(w, msgAmbiguousFunding)

		case errors.Is(err, createSession.ErrPackageNotActive):
			h.logger.Warn("POST /sessions - Package not active: client_id=%s, package_id=%s", req.ClientID, req.PackageID)
			handlers.RespondBadRequest(w, msgPackageNotActive)

		case errors.Is(err, createSession.ErrSlotNotAvailable):
			h.logger.Warn("POST /sessions - Slot not available: date=%s, time=%s, professional=%s", req.Date, req.Time, req.Professional)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createSession.ErrSessionExists):
			h.logger.Warn("POST /sessions - Session exists: session_id=%s", req.ID)
			handlers.RespondConflict(w, msgSessionExists)

		case errors.Is(err, createSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions - Failed to create session: client_id=%s, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created successfully: session_id=%s, client_id=%s, date=%s, time=%s",
		result.ID, result.ClientID, req.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
