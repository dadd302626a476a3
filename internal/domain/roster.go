package domain

// Roster открытый набор профессионалов студии
type Roster struct {
	ids       []string
	defaultID string
}

// NewRoster создает набор профессионалов; defaultID подставляется, когда профессионал не указан
func NewRoster(ids []string, defaultID string) Roster {
	cp := make([]string, len(ids))
	copy(cp, ids)
	return Roster{ids: cp, defaultID: defaultID}
}

// Has проверяет, что профессионал входит в набор
func (r Roster) Has(id string) bool {
	for _, p := range r.ids {
		if p == id {
			return true
		}
	}
	return false
}

// Resolve пустое значение заменяется профессионалом по умолчанию
func (r Roster) Resolve(id string) (string, bool) {
	if id == "" {
		id = r.defaultID
	}
	return id, r.Has(id)
}

// IDs профессионалы в порядке конфигурации
func (r Roster) IDs() []string {
	cp := make([]string, len(r.ids))
	copy(cp, r.ids)
	return cp
}

// Default профессионал по умолчанию
func (r Roster) Default() string {
	return r.defaultID
}
