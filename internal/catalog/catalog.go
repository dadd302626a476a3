package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// Entry позиция каталога пакетов
type Entry struct {
	Name     string        `yaml:"name" json:"name"`
	Sessions int           `yaml:"sessions" json:"sessions"`
	Period   domain.Period `yaml:"period" json:"period"`
	Price    *float64      `yaml:"price,omitempty" json:"price,omitempty"`
}

// fileFormat формат YAML файла каталога
type fileFormat struct {
	Packages    []Entry            `yaml:"packages"`
	AvulsaRates map[string]float64 `yaml:"avulsa_rates"`
}

// Catalog статический справочник пакетов
// Неизвестные имена не приводят к ошибке: возвращаются значения по умолчанию
type Catalog struct {
	entries     []Entry
	byName      map[string]Entry
	avulsaRates map[domain.Period]float64
}

// New создает каталог из списка позиций и тарифов на разовые сессии
func New(entries []Entry, avulsaRates map[domain.Period]float64) *Catalog {
	c := &Catalog{
		entries:     make([]Entry, 0, len(entries)),
		byName:      make(map[string]Entry, len(entries)),
		avulsaRates: make(map[domain.Period]float64, len(avulsaRates)),
	}
	for _, e := range entries {
		if _, dup := c.byName[e.Name]; dup {
			continue
		}
		c.entries = append(c.entries, e)
		c.byName[e.Name] = e
	}
	for p, v := range avulsaRates {
		c.avulsaRates[p] = v
	}
	return c
}

// Default встроенный каталог студии
func Default() *Catalog {
	return New(defaultEntries(), defaultAvulsaRates())
}

// LoadFile читает каталог из YAML файла
// Если тарифы на разовые сессии в файле не указаны, используются встроенные
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFile, err)
	}

	if len(f.Packages) == 0 {
		return nil, fmt.Errorf("%w: no packages defined", ErrInvalidCatalog)
	}
	for i, e := range f.Packages {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: package #%d has no name", ErrInvalidCatalog, i+1)
		}
		if e.Sessions <= 0 {
			return nil, fmt.Errorf("%w: package %q has non-positive session count", ErrInvalidCatalog, e.Name)
		}
	}

	rates := defaultAvulsaRates()
	if len(f.AvulsaRates) > 0 {
		rates = make(map[domain.Period]float64, len(f.AvulsaRates))
		for p, v := range f.AvulsaRates {
			rates[domain.Period(p)] = v
		}
	}

	return New(f.Packages, rates), nil
}

// SessionsForPackage количество сессий в пакете, 1 для неизвестного имени
func (c *Catalog) SessionsForPackage(name string) int {
	if e, ok := c.byName[name]; ok {
		return e.Sessions
	}
	return 1
}

// DefaultPeriodForPackage длительность сессии пакета, пусто для неизвестного имени
func (c *Catalog) DefaultPeriodForPackage(name string) domain.Period {
	if e, ok := c.byName[name]; ok {
		return e.Period
	}
	return ""
}

// PackageNames имена пакетов в порядке каталога
func (c *Catalog) PackageNames() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.Name)
	}
	return names
}

// Entries копия позиций каталога
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Has проверяет наличие пакета в каталоге
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Price цена пакета, если она задана
func (c *Catalog) Price(name string) (float64, bool) {
	e, ok := c.byName[name]
	if !ok || e.Price == nil {
		return 0, false
	}
	return *e.Price, true
}

// AvulsaRate фиксированная цена разовой сессии для периода
func (c *Catalog) AvulsaRate(period domain.Period) (float64, bool) {
	v, ok := c.avulsaRates[period]
	return v, ok
}

// AvulsaRates копия тарифов на разовые сессии
func (c *Catalog) AvulsaRates() map[domain.Period]float64 {
	out := make(map[domain.Period]float64, len(c.avulsaRates))
	for p, v := range c.avulsaRates {
		out[p] = v
	}
	return out
}
