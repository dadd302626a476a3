package domain

// Client клиент студии
type Client struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email,omitempty"`
	Phone    string     `json:"phone,omitempty"`
	Birthday string     `json:"birthday,omitempty"`
	Notes    string     `json:"notes,omitempty"`
	Packages []*Package `json:"packages"`
}

// FindPackage ищет пакет клиента по ID
func (c *Client) FindPackage(id string) *Package {
	for _, p := range c.Packages {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Package экземпляр пакета, принадлежащий клиенту
type Package struct {
	ID       string `json:"id"`   // трёхзначная строка, уникальна в пределах клиента
	Name     string `json:"name"` // ключ каталога
	Validity string `json:"validity,omitempty"`
	// SessionsUsedBase ручное смещение для пакетов, купленных до перехода в систему
	SessionsUsedBase int `json:"sessionsUsedBase"`
	// SessionsUsed кэш количества выполненных сессий, только для отображения
	SessionsUsed  int    `json:"sessionsUsed"`
	IsNew         bool   `json:"isNew,omitempty"`
	NewAssignedAt string `json:"newAssignedAt,omitempty"`
}
