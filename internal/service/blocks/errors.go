package blocks

import "errors"

var (
	// ErrUnknownProfessional возвращается, когда профессионал не входит в набор студии
	ErrUnknownProfessional = errors.New("blocks: unknown professional")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blocks: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blocks: internal error")
)
