package fixedschedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда шаблон не найден
	ErrScheduleNotFound = errors.New("fixedschedules: schedule not found")

	// ErrClientNotFound возвращается, когда клиент шаблона не найден
	ErrClientNotFound = errors.New("fixedschedules: client not found")

	// ErrUnknownProfessional возвращается, когда профессионал не входит в набор студии
	ErrUnknownProfessional = errors.New("fixedschedules: unknown professional")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("fixedschedules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("fixedschedules: internal error")
)
