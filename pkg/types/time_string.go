package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of day range")
)

// TimeString время суток в формате "HH:MM" (24h)
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит и нормализует строку "H:MM" / "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes)
}

// FromMinutes создает TimeString из количества минут от полуночи
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// MustFromMinutes как FromMinutes, но паникует при выходе за пределы суток.
// Используется только для констант.
func MustFromMinutes(minutes int) TimeString {
	ts, err := FromMinutes(minutes)
	if err != nil {
		panic(err)
	}
	return ts
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	return parseMinutes(string(t))
}

// AddMinutes возвращает время, сдвинутое на n минут (в пределах суток)
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes + n)
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются равными полуночи
func (t TimeString) IsBefore(other TimeString) bool {
	a, _ := t.Minutes()
	b, _ := other.Minutes()
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, _ := t.Minutes()
	b, _ := other.Minutes()
	return a > b
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
	return nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrTimeOutOfRange, s)
	}

	return hours*60 + mins, nil
}
