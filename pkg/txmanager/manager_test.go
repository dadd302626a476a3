package txmanager

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_DoSerializes(t *testing.T) {
	m := New()
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do(context.Background(), func(ctx context.Context) error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestManager_DoPropagatesErrors(t *testing.T) {
	m := New()
	boom := errors.New("boom")
	assert.ErrorIs(t, m.Do(context.Background(), func(context.Context) error { return boom }), boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := m.Do(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
