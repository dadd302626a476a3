package availability

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации движка
	ErrInvalidConfig = errors.New("availability: invalid config")
)
