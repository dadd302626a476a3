package update_custom_slots

import (
	"context"
	"time"
)

type CustomSlotsService interface {
	Replace(ctx context.Context, date time.Time, professional string, slots []string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
