package confirm_fixed_schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда шаблон не найден
	ErrScheduleNotFound = errors.New("confirm_fixed_schedule: schedule not found")

	// ErrScheduleInactive возвращается при подтверждении выключенного шаблона
	ErrScheduleInactive = errors.New("confirm_fixed_schedule: schedule is inactive")

	// ErrClientNotFound возвращается, когда клиент шаблона не найден
	ErrClientNotFound = errors.New("confirm_fixed_schedule: client not found")

	// ErrAlreadyConfirmed возвращается, когда сессия на эту неделю уже создана
	ErrAlreadyConfirmed = errors.New("confirm_fixed_schedule: already confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_fixed_schedule: internal error")
)
