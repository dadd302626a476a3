package catalog

import "errors"

var (
	// ErrReadFile возвращается, когда не удалось прочитать файл каталога
	ErrReadFile = errors.New("catalog: failed to read file")

	// ErrParseFile возвращается при ошибке разбора YAML
	ErrParseFile = errors.New("catalog: failed to parse file")

	// ErrInvalidCatalog возвращается, когда каталог в файле некорректен
	ErrInvalidCatalog = errors.New("catalog: invalid catalog")
)
