package fixedschedules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	scheduleRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/fixedschedules"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	sessionRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-StudioService/internal/service/fixedschedules/models"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newFixture(t *testing.T) (*Service, *sessionRepo.Repository) {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()
	store := kv.NewStore(kv.NewMemoryBackend(), nil, nil, log)
	clients := clientRepo.NewRepository(store)
	sessions := sessionRepo.NewRepository(store, log)

	_, err := clients.Create(ctx, &domain.Client{
		ID: "c1", Name: "Ana",
		Packages: []*domain.Package{{ID: "321", Name: "Renove 10 sessões (1h)"}},
	})
	require.NoError(t, err)

	svc := NewService(scheduleRepo.NewRepository(store), clients, sessions,
		domain.NewRoster([]string{"leticia", "dani"}, "leticia"), log)
	// среда
	svc.timeProvider = fixedTime{now: time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)}
	return svc, sessions
}

func TestService_CreateValidation(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.CreateScheduleRequest
		wantErr error
	}{
		{name: "sunday", req: models.CreateScheduleRequest{ClientID: "c1", Weekday: 7, Time: "09:00"}, wantErr: ErrInvalidInput},
		{name: "bad time", req: models.CreateScheduleRequest{ClientID: "c1", Weekday: 1, Time: "9h"}, wantErr: ErrInvalidInput},
		{name: "bad period", req: models.CreateScheduleRequest{ClientID: "c1", Weekday: 1, Time: "09:00", Period: "3h"}, wantErr: ErrInvalidInput},
		{name: "both funding modes", req: models.CreateScheduleRequest{ClientID: "c1", Weekday: 1, Time: "09:00", PackageID: "321", IsAvulsa: true}, wantErr: ErrInvalidInput},
		{name: "unknown package", req: models.CreateScheduleRequest{ClientID: "c1", Weekday: 1, Time: "09:00", PackageID: "999"}, wantErr: ErrInvalidInput},
		{name: "unknown professional", req: models.CreateScheduleRequest{ClientID: "c1", Weekday: 1, Time: "09:00", Professional: "bia"}, wantErr: ErrUnknownProfessional},
		{name: "unknown client", req: models.CreateScheduleRequest{ClientID: "ghost", Weekday: 1, Time: "09:00"}, wantErr: ErrClientNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Create(ctx, &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_LifecycleAndPending(t *testing.T) {
	svc, sessions := newFixture(t)
	ctx := context.Background()

	friday, err := svc.Create(ctx, &models.CreateScheduleRequest{ClientID: "c1", Weekday: 5, Time: "9:00", PackageID: "321"})
	require.NoError(t, err)
	assert.Equal(t, "09:00", friday.Time)
	assert.Equal(t, "leticia", friday.Professional)
	assert.True(t, friday.Active)

	monday, err := svc.Create(ctx, &models.CreateScheduleRequest{ClientID: "c1", Weekday: 1, Time: "18:00", IsAvulsa: true, Professional: "dani"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, monday.ID, list[0].ID)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "2025-03-17", pending[0].Date)
	assert.Equal(t, "Ana", pending[0].ClientName)
	assert.Equal(t, "2025-03-14", pending[1].Date)
	assert.Equal(t, "c1_2025-03-14_09:00_fixo", pending[1].SessionID)

	// сессия на пятницу уже создана вручную
	_, err = sessions.Create(ctx, &domain.Session{ID: "manual", ClientID: "c1", Date: "2025-03-14", Time: "09:00", Status: domain.StatusScheduled})
	require.NoError(t, err)

	toggled, err := svc.Toggle(ctx, monday.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	pending, err = svc.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	require.NoError(t, svc.Delete(ctx, monday.ID))
	assert.ErrorIs(t, svc.Delete(ctx, monday.ID), ErrScheduleNotFound)
	_, err = svc.Toggle(ctx, "missing")
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestIsBooked_IgnoresCancelled(t *testing.T) {
	f := &domain.FixedSchedule{ClientID: "c1", Time: "09:00"}
	sessions := []*domain.Session{
		{ID: "x", ClientID: "c1", Date: "2025-03-14", Time: "09:00", Status: domain.StatusCancelled},
	}
	assert.False(t, IsBooked(f, "2025-03-14", sessions))

	sessions = append(sessions, &domain.Session{ID: "c1_2025-03-14_09:00_fixo", Status: domain.StatusCancelled})
	assert.True(t, IsBooked(f, "2025-03-14", sessions))
}
