package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients: client not found")

	// ErrPackageNotFound возвращается, когда пакет клиента не найден
	ErrPackageNotFound = errors.New("clients: package not found")

	// ErrUnknownPackage возвращается, когда пакета нет в каталоге
	ErrUnknownPackage = errors.New("clients: package is not in catalog")

	// ErrNoFreePackageID возвращается, когда у клиента заняты все трёхзначные ID
	ErrNoFreePackageID = errors.New("clients: no free package id")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("clients: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("clients: internal error")
)
