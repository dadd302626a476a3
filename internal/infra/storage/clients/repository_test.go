package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

func newRepo() (*Repository, *kv.Store) {
	store := kv.NewStore(kv.NewMemoryBackend(), nil, nil, logger.NewNop())
	return NewRepository(store), store
}

func TestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	_, err := repo.Create(ctx, &domain.Client{ID: "c1", Name: "Ana"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Client{ID: "c1", Name: "Dup"})
	assert.ErrorIs(t, err, ErrClientExists)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.NotNil(t, got.Packages)

	_, err = repo.Update(ctx, "c1", func(c *domain.Client) error {
		c.Packages = append(c.Packages, &domain.Package{ID: "123", Name: "Renove 5 sessões (1h)"})
		return nil
	})
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, got.Packages, 1)

	require.NoError(t, repo.Delete(ctx, "c1"))
	_, err = repo.GetByID(ctx, "c1")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "c1"), ErrClientNotFound)
}

func TestRepository_CorruptCollection(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()
	require.NoError(t, store.Commit(ctx, domain.KeyClients, map[string]string{"not": "a list"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
