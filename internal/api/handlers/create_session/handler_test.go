package create_session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	createSession "github.com/m04kA/SMC-StudioService/internal/usecase/create_session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *createSession.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createSession.Request) (*createSession.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createSession.Response{
		ID:           "s1",
		ClientID:     req.ClientID,
		ClientName:   "Ana",
		Date:         req.Date,
		Time:         req.Time,
		Period:       domain.Period1h,
		MassageType:  req.MassageType,
		Status:       domain.StatusScheduled,
		Professional: "leticia",
		IsAvulsa:     true,
	}, nil
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body)))
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := post(h, `{"clientId":"c1","date":"2025-03-10","time":"10:00","massageType":"Relaxante","isAvulsa":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Equal(t, "10:00", uc.got.Time.String())
	assert.True(t, uc.got.IsAvulsa)

	var body SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "s1", body.ID)
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, "scheduled", body.Status)
}

func TestHandler_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken json", body: `{`},
		{name: "bad date", body: `{"clientId":"c1","date":"10/03/2025","time":"10:00"}`},
		{name: "bad time", body: `{"clientId":"c1","date":"2025-03-10","time":"25:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := post(NewHandler(uc, nopLogger{}), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: createSession.ErrClientNotFound, status: http.StatusNotFound},
		{err: createSession.ErrFundingModeRequired, status: http.StatusBadRequest},
		{err: createSession.ErrAmbiguousFunding, status: http.StatusBadRequest},
		{err: createSession.ErrPackageNotActive, status: http.StatusBadRequest},
		{err: createSession.ErrUnknownProfessional, status: http.StatusBadRequest},
		{err: fmt.Errorf("%w: taken", createSession.ErrSlotNotAvailable), status: http.StatusConflict},
		{err: createSession.ErrSessionExists, status: http.StatusConflict},
		{err: createSession.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := post(h, `{"clientId":"c1","date":"2025-03-10","time":"10:00","massageType":"Relaxante"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
