package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound : la clé n'existe pas dans le store.
var ErrNotFound = errors.New("clé introuvable")

// KV est le store clé/valeur durable qui porte les snapshots panier/wishlist.
// Implémenté par Redis en production, par MemoryKV dans les tests.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// SnapshotTTL : durée de vie des snapshots panier/wishlist dans Redis (30 jours)
const SnapshotTTL = 30 * 24 * time.Hour

// RedisKV adapte un client Redis au contrat KV.
type RedisKV struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{Client: client, TTL: SnapshotTTL}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	data, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, key, value, r.TTL).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// MemoryKV est une implémentation en mémoire pour les tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string

	// FailWrites force les erreurs d'écriture (tests de résilience)
	FailWrites bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("écriture refusée")
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return errors.New("écriture refusée")
	}
	delete(m.data, key)
	return nil
}
