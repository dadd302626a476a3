package sessions

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
	"github.com/m04kA/SMC-StudioService/internal/service/sessions/models"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

type countingMetrics struct {
	transitions map[string]int
}

func (m *countingMetrics) IncSessionTransition(transition string) {
	m.transitions[transition]++
}

type fixture struct {
	svc      *Service
	sessions *sessionRepo.Repository
	clients  *clientRepo.Repository
	metrics  *countingMetrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()
	store := kv.NewStore(kv.NewMemoryBackend(), nil, nil, log)
	sessions := sessionRepo.NewRepository(store, log)
	clients := clientRepo.NewRepository(store)
	m := &countingMetrics{transitions: map[string]int{}}

	_, err := clients.Create(ctx, &domain.Client{
		ID:   "c1",
		Name: "Ana",
		Packages: []*domain.Package{
			{ID: "123", Name: "Renove 5 sessões (1h)", SessionsUsedBase: 1},
		},
	})
	require.NoError(t, err)

	seed := []*domain.Session{
		{ID: "s1", ClientID: "c1", PackageID: "123", Date: "2025-03-03", Time: "10:00", Period: domain.Period1h, Status: domain.StatusDone, Professional: "leticia"},
		{ID: "s2", ClientID: "c1", PackageID: "123", Date: "2025-03-10", Time: "10:00", Period: domain.Period1h, Status: domain.StatusScheduled, Professional: "leticia"},
		{ID: "s3", ClientID: "c1", PackageID: "123", Date: "2025-03-17", Time: "10:00", Period: domain.Period1h, Status: domain.StatusScheduled, Professional: "dani"},
		{ID: "a1", ClientID: "c1", IsAvulsa: true, Date: "2025-03-05", Time: "15:00", Period: domain.Period30Min, Status: domain.StatusScheduled, Professional: "dani"},
	}
	for _, s := range seed {
		_, err := sessions.Create(ctx, s)
		require.NoError(t, err)
	}

	cat := catalog.Default()
	svc := NewService(sessions, clients, numbering.New(cat), m, log)
	return fixture{svc: svc, sessions: sessions, clients: clients, metrics: m}
}

func cachedUsed(t *testing.T, f fixture) int {
	t.Helper()
	c, err := f.clients.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	return c.FindPackage("123").SessionsUsed
}

func TestService_CompleteRefreshesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Complete(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusDone), resp.Status)
	assert.Equal(t, 2, cachedUsed(t, f))
	assert.Equal(t, 1, f.metrics.transitions[transitionComplete])

	_, err = f.svc.Complete(ctx, "s2")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.svc.Cancel(ctx, "s2")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.Complete(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_CancelIsTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Cancel(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	_, err = f.svc.Complete(ctx, "a1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_RemoveRecountsDoneSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Complete(ctx, "s2")
	require.NoError(t, err)
	require.Equal(t, 2, cachedUsed(t, f))

	require.NoError(t, f.svc.Remove(ctx, "s1"))
	assert.Equal(t, 1, cachedUsed(t, f))

	_, err = f.sessions.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, sessionRepo.ErrSessionNotFound)
	assert.ErrorIs(t, f.svc.Remove(ctx, "s1"), ErrSessionNotFound)
}

func TestService_RemoveOrphanSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sessions.Create(ctx, &domain.Session{ID: "o1", ClientID: "ghost", PackageID: "999", Status: domain.StatusDone})
	require.NoError(t, err)
	assert.NoError(t, f.svc.Remove(ctx, "o1"))
}

func TestService_Number(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		id   string
		want string
	}{
		{id: "s1", want: "2/5"},
		{id: "s2", want: "3/5"},
		{id: "s3", want: "4/5"},
		{id: "a1", want: numbering.Sentinel},
		{id: "missing", want: numbering.Sentinel},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			resp, err := f.svc.Number(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Number)
		})
	}

	// отмена освобождает номер, следующие сессии сдвигаются
	_, err := f.svc.Cancel(ctx, "s2")
	require.NoError(t, err)
	resp, err := f.svc.Number(ctx, "s3")
	require.NoError(t, err)
	assert.Equal(t, "3/5", resp.Number)
}

func TestService_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	prof := "dani"
	resp, err := f.svc.List(ctx, &models.ListSessionsRequest{Professional: &prof})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "a1", resp.Sessions[0].ID)
	assert.Equal(t, "s3", resp.Sessions[1].ID)

	start := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	resp, err = f.svc.List(ctx, &models.ListSessionsRequest{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	bad := "unknown"
	_, err = f.svc.List(ctx, &models.ListSessionsRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.List(ctx, &models.ListSessionsRequest{StartDate: &end, EndDate: &start})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
