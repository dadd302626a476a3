package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-StudioService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioService/internal/domain"
)

type Handler struct {
	catalog Catalog
	roster  domain.Roster
	logger  Logger
}

func NewHandler(catalog Catalog, roster domain.Roster, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		roster:  roster,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	response := newCatalogResponse(h.catalog, h.roster)
	h.logger.Info("GET /catalog - Catalog retrieved: packages=%d", len(response.Packages))
	handlers.RespondJSON(w, http.StatusOK, response)
}
