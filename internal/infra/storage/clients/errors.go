package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients.repository: client not found")

	// ErrClientExists возвращается при создании клиента с существующим ID
	ErrClientExists = errors.New("clients.repository: client already exists")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("clients.repository: store error")
)
