package fixedschedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда шаблон не найден
	ErrScheduleNotFound = errors.New("fixedschedules.repository: schedule not found")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("fixedschedules.repository: store error")
)
