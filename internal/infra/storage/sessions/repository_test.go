package sessions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/internal/domain"
	"github.com/m04kA/SMC-StudioService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

func newRepo() (*Repository, *kv.Store) {
	store := kv.NewStore(kv.NewMemoryBackend(), nil, nil, logger.NewNop())
	return NewRepository(store, logger.NewNop()), store
}

func TestRepository_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	s := &domain.Session{ID: "s1", ClientID: "c1", Date: "2024-06-03", Time: "10:00", Professional: "dani", Status: domain.StatusScheduled}
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	_, err = repo.Create(ctx, s)
	assert.ErrorIs(t, err, ErrSessionExists)

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "dani", got.Professional)

	removed, err := repo.Delete(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", removed.ID)

	_, err = repo.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.Delete(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_UpdatePassesCallbackError(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()
	_, err := repo.Create(ctx, &domain.Session{ID: "s1", Status: domain.StatusScheduled})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "s1", func(s *domain.Session) error {
		s.Status = domain.StatusDone
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, updated.Status)

	denied := errors.New("denied")
	_, err = repo.Update(ctx, "s1", func(s *domain.Session) error { return denied })
	assert.Equal(t, denied, err)

	_, err = repo.Update(ctx, "missing", func(s *domain.Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRepository_GetAllDedupesLastWins(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()

	require.NoError(t, store.Commit(ctx, domain.KeySessions, []*domain.Session{
		{ID: "s1", Time: "09:00"},
		{ID: "s2", Time: "10:00"},
		{ID: "s1", Time: "11:00"},
		nil,
	}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s1", all[0].ID)
	assert.Equal(t, "11:00", all[0].Time)
}

func TestRepository_ListAndByDate(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()
	require.NoError(t, store.Commit(ctx, domain.KeySessions, []*domain.Session{
		{ID: "a", Date: "2024-06-03", Professional: "dani", ClientID: "c1", Status: domain.StatusScheduled},
		{ID: "b", Date: "2024-06-03", Professional: "bia", ClientID: "c1", Status: domain.StatusDone},
		{ID: "c", Date: "2024-06-04", Professional: "dani", ClientID: "c2", Status: domain.StatusCancelled},
	}))

	day, err := repo.GetByDateAndProfessional(ctx, "2024-06-03", "dani")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "a", day[0].ID)

	c1 := "c1"
	list, err := repo.List(ctx, domain.SessionsFilter{ClientID: &c1})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRepository_ImportLegacyPartitions(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo()

	require.NoError(t, store.Commit(ctx, domain.KeySessions, []*domain.Session{
		{ID: "s1", Time: "09:00", Professional: "dani"},
	}))
	require.NoError(t, store.Commit(ctx, domain.LegacySessionsKey("dani"), []*domain.Session{
		{ID: "s1", Time: "09:30"},
		{ID: "s2", Time: "10:00"},
	}))
	require.NoError(t, store.Commit(ctx, domain.LegacySessionsKey("leticia"), []*domain.Session{
		{ID: "s3", Time: "11:00"},
	}))

	n, err := repo.ImportLegacyPartitions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byID := map[string]*domain.Session{}
	for _, s := range all {
		byID[s.ID] = s
	}
	assert.Equal(t, "09:30", byID["s1"].Time, "partition copy is read last and wins")
	assert.Equal(t, "dani", byID["s2"].Professional)
	assert.Equal(t, "leticia", byID["s3"].Professional)

	keys, err := store.Keys(ctx, domain.LegacySessionsKey(""))
	require.NoError(t, err)
	assert.Empty(t, keys)

	// повторный импорт ничего не делает
	n, err = repo.ImportLegacyPartitions(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
