package list_manual_entries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/service/entries"
	"github.com/m04kA/SMC-StudioService/internal/service/entries/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.ListEntriesRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListEntriesRequest) (*models.EntryListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.EntryListResponse{Entries: []*models.EntryResponse{}, Total: 0}, nil
}

func TestHandler(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/manual-entries?startDate=2025-03-01", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.StartDate)
	assert.Nil(t, svc.got.EndDate)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: entries.ErrInvalidInput}, nopLogger{}).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/manual-entries?startDate=2025-03-31&endDate=2025-03-01", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
