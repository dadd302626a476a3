package create_session

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_session: client not found")

	// ErrUnknownProfessional возвращается, когда профессионал не входит в набор студии
	ErrUnknownProfessional = errors.New("create_session: unknown professional")

	// ErrFundingModeRequired возвращается, когда у клиента есть активные пакеты, а способ оплаты не выбран
	ErrFundingModeRequired = errors.New("create_session: funding mode is required")

	// ErrAmbiguousFunding возвращается, когда выбраны и пакет, и разовая оплата
	ErrAmbiguousFunding = errors.New("create_session: package and avulsa are mutually exclusive")

	// ErrPackageNotActive возвращается, когда пакет не найден или просрочен
	ErrPackageNotActive = errors.New("create_session: package is not active")

	// ErrSlotNotAvailable возвращается, когда сессия не помещается до следующей записи
	ErrSlotNotAvailable = errors.New("create_session: slot is not available")

	// ErrSessionExists возвращается, когда сессия с таким ID уже существует
	ErrSessionExists = errors.New("create_session: session already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_session: internal error")
)
