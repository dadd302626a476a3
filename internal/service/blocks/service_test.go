package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	blocksRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/blocks"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

func newService() *Service {
	log := logger.NewNop()
	repo := blocksRepo.NewRepository(kv.NewStore(kv.NewMemoryBackend(), nil, nil, log))
	return NewService(repo, domain.NewRoster([]string{"leticia", "dani"}, "leticia"), log)
}

func TestService_Replace(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	saved, err := svc.Replace(ctx, date, "leticia", []Interval{
		{Start: "14:00", End: "15:00"},
		{Start: "8:00", End: "10:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.BlockedInterval{
		{Date: "2025-03-10", Start: "08:00", End: "10:00"},
		{Date: "2025-03-10", Start: "14:00", End: "15:00"},
	}, saved)

	got, err := svc.Get(ctx, date, "leticia")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_ReplaceValidates(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		intervals []Interval
	}{
		{name: "bad start", intervals: []Interval{{Start: "x", End: "10:00"}}},
		{name: "bad end", intervals: []Interval{{Start: "09:00", End: "24:00"}}},
		{name: "empty interval", intervals: []Interval{{Start: "10:00", End: "10:00"}}},
		{name: "reversed", intervals: []Interval{{Start: "11:00", End: "10:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Replace(ctx, date, "dani", tt.intervals)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := svc.Replace(ctx, date, "bia", nil)
	assert.ErrorIs(t, err, ErrUnknownProfessional)
}
