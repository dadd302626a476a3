package customslots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

func TestRepository_SetGetDeleteBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewStore(kv.NewMemoryBackend(), nil, nil, logger.NewNop()))

	got, err := repo.Get(ctx, "2025-03-10", "leticia")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Set(ctx, "2025-03-10", "leticia", []string{"07:00", "21:00"}))
	require.NoError(t, repo.Set(ctx, "2025-03-12", "dani", []string{"12:30"}))

	got, err = repo.Get(ctx, "2025-03-10", "leticia")
	require.NoError(t, err)
	assert.Equal(t, []string{"07:00", "21:00"}, got)

	got, err = repo.Get(ctx, "2025-03-10", "dani")
	require.NoError(t, err)
	assert.Empty(t, got)

	removed, err := repo.DeleteBefore(ctx, "2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	got, err = repo.Get(ctx, "2025-03-12", "dani")
	require.NoError(t, err)
	assert.Equal(t, []string{"12:30"}, got)

	require.NoError(t, repo.Set(ctx, "2025-03-12", "dani", nil))
	got, err = repo.Get(ctx, "2025-03-12", "dani")
	require.NoError(t, err)
	assert.Empty(t, got)
}
