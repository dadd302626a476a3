package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/schema"

	"github.com/m04kA/SMC-StudioService/internal/domain"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// DecodeQuery разбирает query параметры в структуру с тегами `schema`
func DecodeQuery(r *http.Request, dst interface{}) error {
	return queryDecoder.Decode(dst, r.URL.Query())
}

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

// ParseOptionalDate пустая строка дает nil
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// OptionalString пустая строка дает nil
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
