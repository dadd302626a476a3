package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInvalidTransition возвращается при переходе из завершённого статуса
	ErrInvalidTransition = errors.New("sessions: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
