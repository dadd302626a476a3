package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StudioService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &getAvailableSlots.Response{
		Date:            req.Date,
		Professional:    req.Professional,
		Period:          domain.Period1h,
		DurationMinutes: 60,
		Slots:           []types.TimeString{"08:00", "09:15"},
	}, nil
}

func serve(uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/professionals/{professional}/available-slots", NewHandler(uc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/professionals/dani/available-slots?date=2025-03-10&period=1h")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dani", uc.got.Professional)
	assert.Equal(t, domain.Period1h, uc.got.Period)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"08:00", "09:15"}, body.Slots)
	assert.Equal(t, "2025-03-10", body.Date)
}

func TestHandler_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/professionals/dani/available-slots").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/professionals/dani/available-slots?date=x").Code)
	assert.Equal(t, http.StatusNotFound,
		serve(&fakeUseCase{err: getAvailableSlots.ErrUnknownProfessional}, "/professionals/zoe/available-slots?date=2025-03-10").Code)
	assert.Equal(t, http.StatusBadRequest,
		serve(&fakeUseCase{err: getAvailableSlots.ErrInvalidPeriod}, "/professionals/dani/available-slots?date=2025-03-10&period=3h").Code)
}
