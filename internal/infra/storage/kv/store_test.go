package kv

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioService/pkg/logger"
)

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(_ context.Context, key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore() (*Store, *MemoryBackend, *recordingPublisher) {
	backend := NewMemoryBackend()
	pub := &recordingPublisher{}
	return NewStore(backend, pub, nil, logger.NewNop()), backend, pub
}

func TestStore_CommitAndLoad(t *testing.T) {
	ctx := context.Background()
	s, _, pub := newTestStore()

	require.NoError(t, s.Commit(ctx, "items", []item{{ID: "1", Name: "a"}}))

	items, err := LoadSlice[item](ctx, s, "items")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "1", Name: "a"}}, items)
	assert.Equal(t, []string{"items"}, pub.published())
}

func TestStore_MissingKeyIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore()

	items, err := LoadSlice[item](ctx, s, "nothing")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	m, err := LoadMap[[]string](ctx, s, "nothing")
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestStore_CorruptValueIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := newTestStore()

	require.NoError(t, backend.Set(ctx, "items", []byte("{not json")))
	require.NoError(t, backend.Set(ctx, "wrong_type", []byte(`{"id": 1}`)))

	items, err := LoadSlice[item](ctx, s, "items")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = LoadSlice[item](ctx, s, "wrong_type")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s, backend, pub := newTestStore()
	require.NoError(t, backend.Set(ctx, "items", []byte("corrupt")))

	got, err := Update(ctx, s, "items", func(current []item) ([]item, error) {
		assert.Empty(t, current)
		return append(current, item{ID: "1"}), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "1"}}, got)
	assert.Equal(t, []string{"items"}, pub.published())

	stored, err := LoadSlice[item](ctx, s, "items")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "1"}}, stored)
}

func TestUpdate_ErrorAbortsWrite(t *testing.T) {
	ctx := context.Background()
	s, _, pub := newTestStore()
	require.NoError(t, s.Commit(ctx, "items", []item{{ID: "1"}}))

	boom := errors.New("boom")
	_, err := Update(ctx, s, "items", func(current []item) ([]item, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	stored, err := LoadSlice[item](ctx, s, "items")
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "1"}}, stored)
	assert.Equal(t, []string{"items"}, pub.published(), "failed update must not notify")
}

func TestUpdate_Concurrent(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Update(ctx, s, "counter", func(n int) (int, error) {
				return n + 1, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var n int
	ok, err := s.Load(ctx, "counter", &n)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 50, n)
}

func TestStore_DeleteAndKeys(t *testing.T) {
	ctx := context.Background()
	s, _, pub := newTestStore()

	require.NoError(t, s.Commit(ctx, "sessions_dani", []item{}))
	require.NoError(t, s.Commit(ctx, "sessions_bia", []item{}))
	require.NoError(t, s.Commit(ctx, "sessions", []item{}))
	require.NoError(t, s.Commit(ctx, "clients", []item{}))

	keys, err := s.Keys(ctx, "sessions_")
	require.NoError(t, err)
	assert.Equal(t, []string{"sessions_bia", "sessions_dani"}, keys)

	require.NoError(t, s.Delete(ctx, "sessions_bia"))
	keys, err = s.Keys(ctx, "sessions_")
	require.NoError(t, err)
	assert.Equal(t, []string{"sessions_dani"}, keys)

	published := pub.published()
	assert.Equal(t, "sessions_bia", published[len(published)-1])
}
