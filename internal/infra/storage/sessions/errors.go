package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("sessions.repository: session not found")

	// ErrSessionExists возвращается при создании сессии с существующим ID
	ErrSessionExists = errors.New("sessions.repository: session already exists")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("sessions.repository: store error")
)
