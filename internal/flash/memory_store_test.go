package flash

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PopIsOneShot(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "abc", Message{Success: "task created"}))

	msg, ok, err := store.Pop(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "task created", msg.Success)

	_, ok, err = store.Pop(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, time.September, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "abc", Message{Error: "delete failed"}))

	now = now.Add(2 * time.Minute)
	_, ok, err := store.Pop(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_EmptyID(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	assert.ErrorIs(t, store.Put(context.Background(), "", Message{Success: "x"}), ErrEmptyID)

	_, ok, err := store.Pop(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			id := string(rune('a' + idx%26))
			_ = store.Put(ctx, id, Message{Success: id})
			_, _, _ = store.Pop(ctx, id)
		}(i)
	}

	wg.Wait()
}

func TestMessage_IsEmpty(t *testing.T) {
	assert.True(t, Message{}.IsEmpty())
	assert.False(t, Message{Error: "x"}.IsEmpty())
}
