package config

import "errors"

var (
	// ErrReadConfig возвращается, когда не удалось прочитать TOML файл
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrReadEnv возвращается при ошибке чтения .env или переменных окружения
	ErrReadEnv = errors.New("config: failed to read environment")

	// ErrValidation возвращается, когда конфигурация не прошла валидацию
	ErrValidation = errors.New("config: validation failed")
)
