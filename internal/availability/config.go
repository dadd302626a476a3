package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioService/pkg/types"
)

// StepMode режим заполнения промежутка перед первой сессией дня
type StepMode string

const (
	// StepBackwardFromAnchor слоты до закреплённой сессии строятся назад от неё
	StepBackwardFromAnchor StepMode = "backward"
	// StepForward всегда заполнять вперёд от начала рабочего окна
	StepForward StepMode = "forward"
)

// Window рабочее окно в минутах от полуночи
type Window struct {
	Start int
	End   int
}

// NewWindow создает окно из строк HH:MM
func NewWindow(start, end string) (Window, error) {
	s, err := types.NewTimeStringFromString(start)
	if err != nil {
		return Window{}, fmt.Errorf("%w: start %q: %v", ErrInvalidConfig, start, err)
	}
	e, err := types.NewTimeStringFromString(end)
	if err != nil {
		return Window{}, fmt.Errorf("%w: end %q: %v", ErrInvalidConfig, end, err)
	}
	startMin, _ := s.Minutes()
	endMin, _ := e.Minutes()
	if endMin <= startMin {
		return Window{}, fmt.Errorf("%w: window %s-%s is empty", ErrInvalidConfig, start, end)
	}
	return Window{Start: startMin, End: endMin}, nil
}

// Config параметры движка
type Config struct {
	BufferMinutes  int
	WeekdayWindow  Window
	SaturdayWindow Window
	StepMode       StepMode
}

// DefaultConfig значения, принятые в студии
func DefaultConfig() Config {
	return Config{
		BufferMinutes:  15,
		WeekdayWindow:  Window{Start: 8 * 60, End: 20*60 + 10},
		SaturdayWindow: Window{Start: 8 * 60, End: 16*60 + 10},
		StepMode:       StepBackwardFromAnchor,
	}
}

// windowFor рабочее окно дня недели, false для воскресенья
func (c Config) windowFor(day time.Weekday) (Window, bool) {
	switch day {
	case time.Sunday:
		return Window{}, false
	case time.Saturday:
		return c.SaturdayWindow, true
	default:
		return c.WeekdayWindow, true
	}
}
