package entries

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись не найдена
	ErrEntryNotFound = errors.New("entries.repository: entry not found")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("entries.repository: store error")
)
