package domain

import (
	"regexp"
	"strconv"
	"time"
)

// SessionStatus статус сессии
type SessionStatus string

const (
	StatusScheduled SessionStatus = "scheduled"
	StatusDone      SessionStatus = "done"
	StatusCancelled SessionStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s SessionStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// Period длительность сессии
type Period string

const (
	Period30Min Period = "30min"
	Period1h    Period = "1h"
	Period1h30  Period = "1h30"
	Period2h    Period = "2h"
)

// CandidatePeriods длительности, которые предлагаются при выборе слота
var CandidatePeriods = []Period{Period30Min, Period1h, Period1h30, Period2h}

var periodPattern = regexp.MustCompile(`(\d+)h(\d+)?`)

// Minutes переводит период в минуты
// Неизвестный или пустой период считается часом
func (p Period) Minutes() int {
	switch p {
	case Period30Min:
		return 30
	case Period1h:
		return 60
	case Period1h30:
		return 90
	case Period2h:
		return 120
	case "":
		return DefaultSessionMinutes
	}

	m := periodPattern.FindStringSubmatch(string(p))
	if m == nil {
		return DefaultSessionMinutes
	}
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes
}

// IsKnown true для периодов из CandidatePeriods
func (p Period) IsKnown() bool {
	for _, c := range CandidatePeriods {
		if c == p {
			return true
		}
	}
	return false
}

// Session запись о сеансе массажа
// Date и Time хранятся строками: сохранённые данные могут быть некорректными,
// и такие записи должны пропускаться, а не ломать чтение коллекции
type Session struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"clientId"`
	ClientName   string        `json:"clientName,omitempty"`
	Date         string        `json:"date"` // "2024-06-03"
	Time         string        `json:"time"` // "10:00"
	Period       Period        `json:"period"`
	MassageType  string        `json:"massageType"`
	PackageID    string        `json:"packageId,omitempty"`
	PackageName  string        `json:"packageName,omitempty"`
	Status       SessionStatus `json:"status"`
	Professional string        `json:"professional,omitempty"`
	IsAvulsa     bool          `json:"isAvulsa"`
	Notes        string        `json:"notes,omitempty"`
}

// IsOccupying true, если сессия занимает время в расписании
func (s *Session) IsOccupying() bool {
	return s.Status == StatusScheduled || s.Status == StatusDone
}

// IsTerminal true для done и cancelled
func (s *Session) IsTerminal() bool {
	return s.Status == StatusDone || s.Status == StatusCancelled
}

// CanBeCompleted returns true if the session can move to done
func (s *Session) CanBeCompleted() bool {
	return s.Status == StatusScheduled
}

// CanBeCancelled returns true if the session can move to cancelled
func (s *Session) CanBeCancelled() bool {
	return s.Status == StatusScheduled
}

// IsPackageLinked true, если сессия списывается с пакета
func (s *Session) IsPackageLinked() bool {
	return !s.IsAvulsa && s.PackageID != ""
}

// SessionsFilter фильтр списка сессий
type SessionsFilter struct {
	StartDate    *time.Time     // Начало периода (включительно)
	EndDate      *time.Time     // Конец периода (включительно)
	Professional *string        // Фильтр по профессионалу
	ClientID     *string        // Фильтр по клиенту
	Status       *SessionStatus // Фильтр по статусу
}

// Match проверяет, подходит ли сессия под фильтр
// Сессии с нечитаемой датой не попадают в фильтр по периоду
func (f SessionsFilter) Match(s *Session) bool {
	if f.Professional != nil && s.Professional != *f.Professional {
		return false
	}
	if f.ClientID != nil && s.ClientID != *f.ClientID {
		return false
	}
	if f.Status != nil && s.Status != *f.Status {
		return false
	}
	if f.StartDate == nil && f.EndDate == nil {
		return true
	}

	date, err := time.Parse(DateFormat, s.Date)
	if err != nil {
		return false
	}
	if f.StartDate != nil && date.Before(truncateDay(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && date.After(truncateDay(*f.EndDate)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
