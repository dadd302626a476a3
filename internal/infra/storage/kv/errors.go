package kv

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("kv.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kv.repository: failed to scan row")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("kv.repository: transaction error")

	// ErrEncode возвращается, когда значение не удалось сериализовать
	ErrEncode = errors.New("kv.store: failed to encode value")
)

// IsStorageError true для ошибок самого хранилища, а не прикладного кода в Update
func IsStorageError(err error) bool {
	return errors.Is(err, ErrBuildQuery) ||
		errors.Is(err, ErrExecQuery) ||
		errors.Is(err, ErrScanRow) ||
		errors.Is(err, ErrTransaction) ||
		errors.Is(err, ErrEncode)
}
