package confirm_fixed_schedule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	confirmFixedSchedule "github.com/m04kA/SMC-StudioService/internal/usecase/confirm_fixed_schedule"
	createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmFixedSchedule.Request) (*confirmFixedSchedule.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &confirmFixedSchedule.Response{
		ID:     "c1_2025-03-10_10:00_fixo",
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:   "10:00",
		Status: domain.StatusScheduled,
	}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "created", status: http.StatusCreated},
		{name: "not found", err: confirmFixedSchedule.ErrScheduleNotFound, status: http.StatusNotFound},
		{name: "inactive", err: confirmFixedSchedule.ErrScheduleInactive, status: http.StatusConflict},
		{name: "already confirmed", err: confirmFixedSchedule.ErrAlreadyConfirmed, status: http.StatusConflict},
		{name: "slot taken", err: fmt.Errorf("%w: overlap", createSession.ErrSlotNotAvailable), status: http.StatusConflict},
		{name: "internal", err: confirmFixedSchedule.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/fixed-schedules/{id}/confirm", NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}).Handle)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/fixed-schedules/f1/confirm", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
