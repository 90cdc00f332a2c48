package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// fakeLocker simule la sémantique SETNX/DEL de Redis en mémoire.
type fakeLocker struct {
	mu   sync.Mutex
	keys map[string]struct{}
	err  error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{keys: make(map[string]struct{})}
}

func (f *fakeLocker) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, taken := f.keys[key]; taken {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = struct{}{}
	return redis.NewBoolResult(true, nil)
}

func (f *fakeLocker) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := f.keys[key]; ok {
			delete(f.keys, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestCheckoutLock_SecondAcquireBlocked(t *testing.T) {
	rdb := newFakeLocker()
	ctx := context.Background()

	assert.True(t, AcquireCheckoutLock(ctx, rdb, "alice"))
	assert.False(t, AcquireCheckoutLock(ctx, rdb, "alice"))
}

func TestCheckoutLock_ReleaseReenables(t *testing.T) {
	rdb := newFakeLocker()
	ctx := context.Background()

	assert.True(t, AcquireCheckoutLock(ctx, rdb, "alice"))
	ReleaseCheckoutLock(ctx, rdb, "alice")
	assert.True(t, AcquireCheckoutLock(ctx, rdb, "alice"))
}

func TestCheckoutLock_PerUserIsolation(t *testing.T) {
	rdb := newFakeLocker()
	ctx := context.Background()

	assert.True(t, AcquireCheckoutLock(ctx, rdb, "alice"))
	assert.True(t, AcquireCheckoutLock(ctx, rdb, "bob"))
}

func TestCheckoutLock_RedisDownFailsOpen(t *testing.T) {
	rdb := newFakeLocker()
	rdb.err = errors.New("connexion refusée")
	ctx := context.Background()

	assert.True(t, AcquireCheckoutLock(ctx, rdb, "alice"))
}
