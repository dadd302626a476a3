package events

import "github.com/m04kA/SMC-StudioService/internal/infra/notify"

type Subscriber interface {
	Subscribe(size int) (<-chan notify.Event, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
