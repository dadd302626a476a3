package entries

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись не найдена
	ErrEntryNotFound = errors.New("entries: entry not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("entries: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("entries: internal error")
)
