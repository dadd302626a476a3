package fixedschedules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

func TestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewStore(kv.NewMemoryBackend(), nil, nil, logger.NewNop()))

	_, err := repo.Create(ctx, &domain.FixedSchedule{ID: "f1", ClientID: "c1", Weekday: 2, Time: "09:00", Active: true})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "f1", func(f *domain.FixedSchedule) error {
		f.Active = !f.Active
		return nil
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	got, err := repo.GetByID(ctx, "f1")
	require.NoError(t, err)
	assert.False(t, got.Active)

	_, err = repo.Update(ctx, "missing", func(*domain.FixedSchedule) error { return nil })
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	require.NoError(t, repo.Delete(ctx, "f1"))
	assert.ErrorIs(t, repo.Delete(ctx, "f1"), ErrScheduleNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
