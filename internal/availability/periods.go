package availability

import (
	"time"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

// ValidPeriods длительности, которые можно начать ровно в at
// Длительность подходит, если заканчивается не позже начала следующей сессии
// и не пересекается ни с одной сессией дня
func (e *Engine) ValidPeriods(date time.Time, at string, sessions []*domain.Session) []domain.Period {
	result := []domain.Period{}

	start, ok := parseMinutes(at)
	if !ok || date.IsZero() {
		return result
	}
	bookings := bookedIntervals(date.Format(domain.DateFormat), sessions)

	for _, p := range domain.CandidatePeriods {
		if fits(start, p.Minutes(), bookings) {
			result = append(result, p)
		}
	}
	return result
}

// CanStartAt проверяет, что сессия длительностью durationMinutes помещается в at
func (e *Engine) CanStartAt(date time.Time, at string, durationMinutes int, sessions []*domain.Session) bool {
	start, ok := parseMinutes(at)
	if !ok || date.IsZero() || durationMinutes <= 0 {
		return false
	}
	return fits(start, durationMinutes, bookedIntervals(date.Format(domain.DateFormat), sessions))
}

func fits(start, duration int, bookings []interval) bool {
	next := domain.EndOfDayMinutes
	for _, b := range bookings {
		if b.start > start && b.start < next {
			next = b.start
		}
	}
	end := start + duration
	if end > next {
		return false
	}
	for _, b := range bookings {
		if start < b.end && end > b.start {
			return false
		}
	}
	return true
}
