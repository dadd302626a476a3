package get_catalog

import (
	"github.com/m04kA/SMC-StudioService/internal/catalog"
	"github.com/m04kA/SMC-StudioService/internal/domain"
)

type Catalog interface {
	Entries() []catalog.Entry
	AvulsaRates() map[domain.Period]float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
