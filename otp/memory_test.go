package otp

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGetDelete(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	ctx := context.Background()

	entry := Entry{Code: "123456", Email: "jane@example.com", UserID: 1, UserType: "student"}
	require.NoError(t, store.Set(ctx, "student", 1, entry))

	got, ok, err := store.Get(ctx, "student", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)

	// Single use: a consumed code is gone.
	require.NoError(t, store.Delete(ctx, "student", 1))
	_, ok, err = store.Get(ctx, "student", 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreKeysAreScopedByRole(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "student", 1, Entry{Code: "111111"}))
	require.NoError(t, store.Set(ctx, "professional", 1, Entry{Code: "222222"}))

	got, ok, err := store.Get(ctx, "student", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "111111", got.Code)

	got, ok, err = store.Get(ctx, "professional", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "222222", got.Code)
}

func TestMemoryStoreResendOverwrites(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "student", 1, Entry{Code: "111111"}))
	require.NoError(t, store.Set(ctx, "student", 1, Entry{Code: "222222"}))

	got, ok, err := store.Get(ctx, "student", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "222222", got.Code)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "student", 1, Entry{Code: "123456"}))

	_, ok, err := store.Get(ctx, "student", 1)
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok, err = store.Get(ctx, "student", 1)
	require.NoError(t, err)
	assert.False(t, ok, "expired code should not be returned")
}

func TestMemoryStoreConsume(t *testing.T) {
	store := NewMemoryStore(10 * time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "student", 1, Entry{Code: "123456"}))

	// A wrong code does not burn the entry.
	ok, err := store.Consume(ctx, "student", 1, "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get(ctx, "student", 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "student", 1, "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Consume(ctx, "student", 1, "123456")
	require.NoError(t, err)
	assert.False(t, ok, "a consumed code must not verify again")
}

func TestMemoryStoreConsumeExpired(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "student", 1, Entry{Code: "123456"}))
	time.Sleep(40 * time.Millisecond)

	ok, err := store.Consume(ctx, "student", 1, "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentConsumeSingleWinner(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "student", 1, Entry{Code: "123456"}))

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.Consume(ctx, "student", 1, "123456")
			assert.NoError(t, err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for ok := range results {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent verify may succeed")
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			code := fmt.Sprintf("%06d", id)
			_ = store.Set(ctx, "student", id, Entry{Code: code, UserID: id})
			got, ok, err := store.Get(ctx, "student", id)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, code, got.Code)
			_ = store.Delete(ctx, "student", id)
		}(uint(i))
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		_, ok, err := store.Get(ctx, "student", uint(i))
		require.NoError(t, err)
		assert.False(t, ok)
	}
}
