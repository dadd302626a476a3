package create_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/availability"
	"github.com/m04kA/SMC-StudioService/internal/catalog"
	"github.com/m04kA/SMC-StudioService/internal/domain"
	clientRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/clients"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	sessionRepo "github.com/m04kA/SMC-StudioService/internal/infra/storage/sessions"
	"github.com/m04kA/SMC-StudioService/internal/numbering"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
	"github.com/m04kA/SMC-StudioService/pkg/txmanager"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type countingMetrics struct{ count int }

func (m *countingMetrics) IncSessionTransition(string) { m.count++ }

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) (*UseCase, *countingMetrics) {
	t.Helper()
	ctx := context.Background()
	log := logger.NewNop()
	store := kv.NewStore(kv.NewMemoryBackend(), nil, nil, log)

	clients := clientRepo.NewRepository(store)
	for _, c := range []*domain.Client{
		{ID: "c1", Name: "Ana", Packages: []*domain.Package{{ID: "123", Name: "Renove 5 sessões (1h)"}}},
		{ID: "c2", Name: "Bruna"},
		{ID: "c3", Name: "Carla", Packages: []*domain.Package{{ID: "456", Name: "Relax 5 sessões (30 min)", Validity: "2025-01-31"}}},
	} {
		_, err := clients.Create(ctx, c)
		require.NoError(t, err)
	}

	sessions := sessionRepo.NewRepository(store, log)
	_, err := sessions.Create(ctx, &domain.Session{
		ID: "busy", ClientID: "c2", Date: "2025-03-10", Time: "11:00", Period: domain.Period1h,
		Status: domain.StatusScheduled, Professional: "leticia", IsAvulsa: true,
	})
	require.NoError(t, err)

	cat := catalog.Default()
	m := &countingMetrics{}
	uc := NewUseCase(sessions, clients, cat, numbering.New(cat),
		availability.NewEngine(availability.DefaultConfig()),
		domain.NewRoster([]string{"leticia", "dani"}, "leticia"),
		txmanager.New(), m, log)
	uc.timeProvider = fixedTime{now: time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)}
	return uc, m
}

func baseRequest(clientID string) *Request {
	return &Request{
		ClientID:    clientID,
		Date:        monday,
		Time:        "14:00",
		MassageType: "Relaxante",
	}
}

func TestUseCase_PackageFunding(t *testing.T) {
	uc, m := newFixture(t)
	ctx := context.Background()

	req := baseRequest("c1")
	req.PackageID = "123"
	req.Time = "9:00"
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.Period1h, resp.Period)
	assert.Equal(t, "Renove 5 sessões (1h)", resp.PackageName)
	assert.Equal(t, "Ana", resp.ClientName)
	assert.Equal(t, "leticia", resp.Professional)
	assert.Equal(t, "09:00", resp.Time.String())
	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.False(t, resp.IsAvulsa)
	assert.Equal(t, 1, m.count)
}

func TestUseCase_FundingRules(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		clientID  string
		packageID string
		isAvulsa  bool
		wantErr   error
		wantAvul  bool
	}{
		{name: "active packages require a choice", clientID: "c1", wantErr: ErrFundingModeRequired},
		{name: "both modes", clientID: "c1", packageID: "123", isAvulsa: true, wantErr: ErrAmbiguousFunding},
		{name: "unknown package", clientID: "c1", packageID: "999", wantErr: ErrPackageNotActive},
		{name: "avulsa with active packages", clientID: "c1", isAvulsa: true, wantAvul: true},
		{name: "no packages resolves to avulsa", clientID: "c2", wantAvul: true},
		{name: "no packages cannot pick one", clientID: "c2", packageID: "123", wantErr: ErrPackageNotActive},
		{name: "expired package only", clientID: "c3", wantAvul: true},
		{name: "expired package rejected", clientID: "c3", packageID: "456", wantErr: ErrPackageNotActive},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest(tt.clientID)
			req.PackageID = tt.packageID
			req.IsAvulsa = tt.isAvulsa
			req.Period = domain.Period30Min
			req.Professional = "dani"
			// каждая успешная сессия в своём часе
			req.Time = []string{"08:00", "09:00", "10:00", "12:00", "13:00", "15:00", "16:00", "17:00"}[i]

			resp, err := uc.Execute(ctx, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvul, resp.IsAvulsa)
			assert.Empty(t, resp.PackageID)
		})
	}
}

func TestUseCase_SlotMustFitBeforeNextBooking(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	req := baseRequest("c2")
	req.Time = "10:30"
	req.Period = domain.Period1h
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	req.Period = domain.Period30Min
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)

	// другой профессионал свободен
	req = baseRequest("c2")
	req.Time = "10:30"
	req.Period = domain.Period1h
	req.Professional = "dani"
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
}

func TestUseCase_Validation(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	req := baseRequest("c2")
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput, "period is required without a package")

	req = baseRequest("c2")
	req.Period = "3h"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = baseRequest("c2")
	req.Period = domain.Period1h
	req.MassageType = ""
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = baseRequest("c2")
	req.Period = domain.Period1h
	req.Time = "25:00"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = baseRequest("c2")
	req.Period = domain.Period1h
	req.Professional = "bia"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrUnknownProfessional)

	req = baseRequest("ghost")
	req.Period = domain.Period1h
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUseCase_ExplicitIDIsUnique(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	req := baseRequest("c2")
	req.ID = "c2_2025-03-10_14:00_fixo"
	req.Period = domain.Period1h
	resp, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req.ID, resp.ID)

	req.Professional = "dani"
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrSessionExists)
}
