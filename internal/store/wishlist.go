package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"shopkart_back_end/internal/identity"
	"shopkart_back_end/internal/models"
)

// WishlistStore tient la wishlist de la session : un ensemble de produits
// sans doublon, même règle de scope que le panier. Pas de quantité.
type WishlistStore struct {
	mu    sync.Mutex
	kv    KV
	user  *identity.Identity
	items []models.Product
}

func NewWishlistStore(kv KV) *WishlistStore {
	return &WishlistStore{kv: kv}
}

func (s *WishlistStore) Bind(n *identity.Notifier) func() {
	return n.Subscribe(func(user *identity.Identity) {
		if err := s.SetUser(context.Background(), user); err != nil {
			s.mu.Lock()
			s.items = nil
			s.mu.Unlock()
		}
	})
}

func (s *WishlistStore) SetUser(ctx context.Context, user *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.items = nil

	key := WishlistKey(user)
	if key == "" {
		return nil
	}

	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lecture wishlist: %w", err)
	}

	var items []models.Product
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return fmt.Errorf("décodage wishlist: %w", err)
	}
	s.items = items
	return nil
}

// Toggle ajoute le produit s'il est absent, le retire sinon. Deux Toggle
// successifs ramènent la wishlist à son état initial.
func (s *WishlistStore) Toggle(ctx context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persistLocked(ctx)
		}
	}
	s.items = append(s.items, p)
	return s.persistLocked(ctx)
}

// Contains indique si le produit est dans la wishlist.
func (s *WishlistStore) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Items() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *WishlistStore) persistLocked(ctx context.Context) error {
	key := WishlistKey(s.user)
	if key == "" {
		return nil
	}

	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("sérialisation wishlist: %w", err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("sauvegarde wishlist: %w", err)
	}
	return nil
}
