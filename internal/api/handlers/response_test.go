package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "плохо")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: 400, Message: "плохо"}, body)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Ana", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestDecodeQuery(t *testing.T) {
	var dst struct {
		Professional string `schema:"professional"`
		Status       string `schema:"status"`
	}
	r := httptest.NewRequest(http.MethodGet, "/?professional=dani&status=done&other=1", nil)
	require.NoError(t, DecodeQuery(r, &dst))
	assert.Equal(t, "dani", dst.Professional)
	assert.Equal(t, "done", dst.Status)
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptionalDate("2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 10, d.Day())

	_, err = ParseOptionalDate("10/03/2025")
	assert.Error(t, err)
}
