package entries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

func TestRepository_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(kv.NewStore(kv.NewMemoryBackend(), nil, nil, logger.NewNop()))

	_, err := repo.Create(ctx, &domain.ManualEntry{ID: "e1", Value: 150, Description: "Óleo", Date: "2025-03-10"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.ManualEntry{ID: "e2", Value: -40, Description: "Toalhas", Date: "2025-03-11"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, "e1"))
	assert.ErrorIs(t, repo.Delete(ctx, "e1"), ErrEntryNotFound)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "e2", all[0].ID)
}
