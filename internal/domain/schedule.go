package domain

import "time"

// FixedSchedule шаблон еженедельной записи (horário fixo)
type FixedSchedule struct {
	ID           string `json:"id"`
	ClientID     string `json:"clientId"`
	Weekday      int    `json:"weekday"` // 1 = понедельник ... 6 = суббота
	Time         string `json:"time"`
	Period       Period `json:"period,omitempty"`
	PackageID    string `json:"packageId,omitempty"`
	IsAvulsa     bool   `json:"isAvulsa"`
	Professional string `json:"professional"`
	Active       bool   `json:"active"`
}

// BlockedInterval закрытый интервал в расписании профессионала (перерыв и т.п.)
type BlockedInterval struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ManualEntry ручная финансовая запись
type ManualEntry struct {
	ID          string  `json:"id"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// NextDate ближайшая дата дня недели шаблона, начиная с today включительно
func (f *FixedSchedule) NextDate(today time.Time) time.Time {
	target := time.Weekday(f.Weekday % 7)
	days := (int(target) - int(today.Weekday()) + 7) % 7
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, days)
}

// SessionID детерминированный ID сессии, созданной из шаблона на дату
func (f *FixedSchedule) SessionID(date string) string {
	return f.ClientID + "_" + date + "_" + f.Time + "_fixo"
}

// IsValidWeekday рабочие дни студии: понедельник (1) ... суббота (6)
func IsValidWeekday(weekday int) bool {
	return weekday >= 1 && weekday <= 6
}
