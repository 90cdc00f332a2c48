package store

import (
	"context"
	"testing"

	"shopkart_back_end/internal/identity"
	"shopkart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWishlist(t *testing.T, user *identity.Identity) (*WishlistStore, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	ws := NewWishlistStore(kv)
	require.NoError(t, ws.SetUser(context.Background(), user))
	return ws, kv
}

func TestToggle_AddsWhenAbsent(t *testing.T) {
	ws, _ := newTestWishlist(t, alice())

	require.NoError(t, ws.Toggle(context.Background(), phone))

	assert.True(t, ws.Contains(phone.ID))
	assert.Len(t, ws.Items(), 1)
}

func TestToggle_RemovesWhenPresent(t *testing.T) {
	ws, _ := newTestWishlist(t, alice())
	ctx := context.Background()

	require.NoError(t, ws.Toggle(ctx, phone))
	require.NoError(t, ws.Toggle(ctx, phone))

	// double toggle = retour à l'état initial
	assert.False(t, ws.Contains(phone.ID))
	assert.Empty(t, ws.Items())
}

func TestToggle_NoDuplicates(t *testing.T) {
	ws, _ := newTestWishlist(t, alice())
	ctx := context.Background()

	require.NoError(t, ws.Toggle(ctx, phone))
	require.NoError(t, ws.Toggle(ctx, laptop))
	require.NoError(t, ws.Toggle(ctx, phone))
	require.NoError(t, ws.Toggle(ctx, phone))

	items := ws.Items()
	require.Len(t, items, 2)
	assert.True(t, ws.Contains(phone.ID))
	assert.True(t, ws.Contains(laptop.ID))
}

func TestWishlist_PersistsPerUser(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	bob := &identity.Identity{ID: "bob"}

	ws := NewWishlistStore(kv)
	require.NoError(t, ws.SetUser(ctx, alice()))
	require.NoError(t, ws.Toggle(ctx, phone))

	require.NoError(t, ws.SetUser(ctx, bob))
	assert.False(t, ws.Contains(phone.ID))

	require.NoError(t, ws.SetUser(ctx, alice()))
	assert.True(t, ws.Contains(phone.ID))
}

func TestWishlist_AnonymousNeverPersisted(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	ws := NewWishlistStore(kv)
	require.NoError(t, ws.SetUser(ctx, nil))
	require.NoError(t, ws.Toggle(ctx, phone))

	assert.True(t, ws.Contains(phone.ID))
	assert.Empty(t, kv.data)
}

func TestWishlist_BindReloadsOnSessionChange(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	seed := NewWishlistStore(kv)
	require.NoError(t, seed.SetUser(ctx, alice()))
	require.NoError(t, seed.Toggle(ctx, laptop))

	sessions := identity.NewNotifier()
	ws := NewWishlistStore(kv)
	unbind := ws.Bind(sessions)
	defer unbind()

	sessions.Publish(alice())
	assert.True(t, ws.Contains(laptop.ID))

	sessions.Publish(nil)
	assert.Empty(t, ws.Items())
}

func TestScopeKeys(t *testing.T) {
	assert.Equal(t, "cart:alice", CartKey(alice()))
	assert.Equal(t, "wishlist:alice", WishlistKey(alice()))

	assert.Empty(t, CartKey(nil))
	assert.Empty(t, WishlistKey(nil))
	assert.Empty(t, CartKey(&identity.Identity{}))
	assert.Empty(t, WishlistKey(&identity.Identity{}))
}

func TestWishlist_StoresFullProduct(t *testing.T) {
	ws, _ := newTestWishlist(t, alice())
	p := models.Product{ID: 3, Name: "OnePlus 11R", Price: 39999, Rating: 4.4}

	require.NoError(t, ws.Toggle(context.Background(), p))

	items := ws.Items()
	require.Len(t, items, 1)
	assert.Equal(t, p.Name, items[0].Name)
	assert.Equal(t, p.Price, items[0].Price)
}
