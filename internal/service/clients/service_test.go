package clients

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/catalog"
	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	sessionRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-StudioService/internal/numbering"
	"github.com/m04kA/SMC-StudioService/internal/service/clients/models"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	svc      *Service
	sessions *sessionRepo.Repository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logger.NewNop()
	store := kv.NewStore(kv.NewMemoryBackend(), nil, nil, log)
	cat := catalog.Default()
	sessions := sessionRepo.NewRepository(store, log)

	svc := NewService(clientRepo.NewRepository(store), sessions, cat, numbering.New(cat), log)
	svc.timeProvider = fixedTime{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	return fixture{svc: svc, sessions: sessions}
}

func TestService_CreateValidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, &models.CreateClientRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Create(ctx, &models.CreateClientRequest{Name: "Ana", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := f.svc.Create(ctx, &models.CreateClientRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Packages)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestService_AddPackageAssignsUniqueIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	client, err := f.svc.Create(ctx, &models.CreateClientRequest{Name: "Ana"})
	require.NoError(t, err)

	// генератор всегда выдает один и тот же номер
	f.svc.packageID = func() int { return 123 }

	first, err := f.svc.AddPackage(ctx, client.ID, &models.AddPackageRequest{Name: "Renove 5 sessões (1h)", IsNew: true})
	require.NoError(t, err)
	assert.Equal(t, "123", first.ID)
	assert.Equal(t, 5, first.Total)
	assert.NotEmpty(t, first.NewAssignedAt)

	second, err := f.svc.AddPackage(ctx, client.ID, &models.AddPackageRequest{Name: "Relax 5 sessões (30 min)"})
	require.NoError(t, err)
	assert.Equal(t, "100", second.ID)
	assert.Empty(t, second.NewAssignedAt)

	_, err = f.svc.AddPackage(ctx, client.ID, &models.AddPackageRequest{Name: "Pacote inexistente"})
	assert.ErrorIs(t, err, ErrUnknownPackage)

	_, err = f.svc.AddPackage(ctx, "missing", &models.AddPackageRequest{Name: "Renove 5 sessões (1h)"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_ActivePackagesUsesDerivedUsage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	client, err := f.svc.Create(ctx, &models.CreateClientRequest{Name: "Ana"})
	require.NoError(t, err)

	f.svc.packageID = func() int { return 500 }
	_, err = f.svc.AddPackage(ctx, client.ID, &models.AddPackageRequest{Name: "Renove 5 sessões (1h)", SessionsUsedBase: 3})
	require.NoError(t, err)

	active, err := f.svc.ActivePackages(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 3, active[0].Used)
	assert.Equal(t, 2, active[0].Remaining)

	for _, id := range []string{"s1", "s2"} {
		_, err := f.sessions.Create(ctx, &domain.Session{
			ID: id, ClientID: client.ID, PackageID: "500", Date: "2025-03-01", Time: "10:00",
			Status: domain.StatusDone, Period: domain.Period1h,
		})
		require.NoError(t, err)
	}

	active, err = f.svc.ActivePackages(ctx, client.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	got, err := f.svc.Get(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, got.Packages, 1)
	assert.True(t, got.Packages[0].Expired)
	assert.Equal(t, 5, got.Packages[0].Used)
}

func TestService_UpdatePackage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	client, err := f.svc.Create(ctx, &models.CreateClientRequest{Name: "Ana"})
	require.NoError(t, err)
	f.svc.packageID = func() int { return 777 }
	_, err = f.svc.AddPackage(ctx, client.ID, &models.AddPackageRequest{Name: "Renove 10 sessões (1h)"})
	require.NoError(t, err)

	validity := "2025-03-01"
	base := 2
	isNew := true
	updated, err := f.svc.UpdatePackage(ctx, client.ID, "777", &models.UpdatePackageRequest{
		Validity: &validity, SessionsUsedBase: &base, IsNew: &isNew,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.SessionsUsedBase)
	assert.True(t, updated.Expired)
	assert.NotEmpty(t, updated.NewAssignedAt)

	_, err = f.svc.UpdatePackage(ctx, client.ID, "999", &models.UpdatePackageRequest{})
	assert.ErrorIs(t, err, ErrPackageNotFound)

	require.NoError(t, f.svc.Delete(ctx, client.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, client.ID), ErrClientNotFound)
}

func TestService_ReconcileUsage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	client, err := f.svc.Create(ctx, &models.CreateClientRequest{Name: "Ana"})
	require.NoError(t, err)

	f.svc.packageID = func() int { return 700 }
	_, err = f.svc.AddPackage(ctx, client.ID, &models.AddPackageRequest{Name: "Renove 5 sessões (1h)"})
	require.NoError(t, err)

	_, err = f.sessions.Create(ctx, &domain.Session{
		ID: "s1", ClientID: client.ID, PackageID: "700", Date: "2025-03-01", Time: "10:00",
		Status: domain.StatusDone, Period: domain.Period1h,
	})
	require.NoError(t, err)

	fixed, err := f.svc.ReconcileUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	got, err := f.svc.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Packages[0].SessionsUsed)

	fixed, err = f.svc.ReconcileUsage(ctx)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}
