package customslots

import "errors"

var (
	// ErrUnknownProfessional возвращается, когда профессионал не входит в набор студии
	ErrUnknownProfessional = errors.New("customslots: unknown professional")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("customslots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customslots: internal error")
)
