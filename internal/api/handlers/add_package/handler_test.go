package add_package

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StudioService/internal/service/clients"
	"github.com/m04kA/SMC-StudioService/internal/service/clients/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) AddPackage(_ context.Context, _ string, req *models.AddPackageRequest) (*models.PackageResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PackageResponse{ID: "123", Name: req.Name, Total: 10, Remaining: 10}, nil
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "created", body: `{"name":"10 sessões"}`, status: http.StatusCreated},
		{name: "bad json", body: `{"name":`, status: http.StatusBadRequest},
		{name: "unknown field", body: `{"name":"x","price":1}`, status: http.StatusBadRequest},
		{name: "client missing", body: `{"name":"x"}`, err: clients.ErrClientNotFound, status: http.StatusNotFound},
		{name: "not in catalog", body: `{"name":"x"}`, err: clients.ErrUnknownPackage, status: http.StatusBadRequest},
		{name: "ids exhausted", body: `{"name":"x"}`, err: clients.ErrNoFreePackageID, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.NewRouter()
			r.HandleFunc("/clients/{clientId}/packages", NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/clients/c1/packages", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
