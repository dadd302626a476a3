package get_catalog

import (
	"github.com/m04kA/SMC-StudioService/internal/catalog"
	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// CatalogResponse справочник студии
type CatalogResponse struct {
	Packages            []catalog.Entry    `json:"packages"`
	AvulsaRates         map[string]float64 `json:"avulsaRates"`
	Periods             []string           `json:"periods"`
	Professionals       []string           `json:"professionals"`
	DefaultProfessional string             `json:"defaultProfessional"`
}

func newCatalogResponse(c Catalog, roster domain.Roster) *CatalogResponse {
	rates := make(map[string]float64)
	for p, v := range c.AvulsaRates() {
		rates[string(p)] = v
	}
	periods := make([]string, len(domain.CandidatePeriods))
	for i, p := range domain.CandidatePeriods {
		periods[i] = string(p)
	}
	return &CatalogResponse{
		Packages:            c.Entries(),
		AvulsaRates:         rates,
		Periods:             periods,
		Professionals:       roster.IDs(),
		DefaultProfessional: roster.Default(),
	}
}
