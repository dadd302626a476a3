package get_available_slots

import "errors"

var (
	// ErrUnknownProfessional возвращается, когда профессионал не входит в набор студии
	ErrUnknownProfessional = errors.New("get_available_slots: unknown professional")

	// ErrInvalidPeriod возвращается при неизвестной длительности сессии
	ErrInvalidPeriod = errors.New("get_available_slots: invalid period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
