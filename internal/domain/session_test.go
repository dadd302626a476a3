package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod_Minutes(t *testing.T) {
	tests := []struct {
		period Period
		want   int
	}{
		{Period30Min, 30},
		{Period1h, 60},
		{Period1h30, 90},
		{Period2h, 120},
		{"", 60},
		{"3h", 180},
		{"2h15", 135},
		{"45min", 60},
		{"garbage", 60},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Minutes())
		})
	}
}

func TestSession_Transitions(t *testing.T) {
	s := &Session{Status: StatusScheduled}
	assert.True(t, s.IsOccupying())
	assert.True(t, s.CanBeCompleted())
	assert.True(t, s.CanBeCancelled())

	s.Status = StatusDone
	assert.True(t, s.IsOccupying())
	assert.True(t, s.IsTerminal())
	assert.False(t, s.CanBeCancelled())

	s.Status = StatusCancelled
	assert.False(t, s.IsOccupying())
	assert.False(t, s.CanBeCompleted())
}

func TestSessionsFilter_Match(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	dani := "dani"
	done := StatusDone

	s := &Session{Date: "2024-06-10", Professional: "dani", Status: StatusDone, ClientID: "c1"}

	assert.True(t, SessionsFilter{}.Match(s))
	assert.True(t, SessionsFilter{StartDate: &start, EndDate: &end}.Match(s))
	assert.True(t, SessionsFilter{Professional: &dani, Status: &done}.Match(s))

	outside := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	assert.False(t, SessionsFilter{StartDate: &outside}.Match(s))

	bia := "bia"
	assert.False(t, SessionsFilter{Professional: &bia}.Match(s))

	broken := &Session{Date: "10/06/2024"}
	assert.False(t, SessionsFilter{StartDate: &start}.Match(broken))
	assert.True(t, SessionsFilter{}.Match(broken))
}
