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

// CartStore tient le panier de la session courante : une ligne par produit,
// quantité ≥ 1. Chaque mutation réécrit le snapshot complet sous la clé de
// l'utilisateur. L'état mémoire reste la référence si l'écriture échoue.
//
// Politique "add" : cumul des quantités (un Add sur une ligne existante
// incrémente, jamais de doublon).
type CartStore struct {
	mu    sync.Mutex
	kv    KV
	user  *identity.Identity
	items []models.CartItem

	// OnChange est notifié après chaque mutation appliquée ("updated" ou
	// "cleared"). Sert au pubsub Redis pour la synchro WebSocket.
	OnChange func(event string)
}

func NewCartStore(kv KV) *CartStore {
	return &CartStore{kv: kv}
}

// Bind abonne le store aux changements de session et retourne la fonction
// de désabonnement.
func (s *CartStore) Bind(n *identity.Notifier) func() {
	return n.Subscribe(func(user *identity.Identity) {
		// le snapshot du nouvel utilisateur remplace tout l'état courant
		if err := s.SetUser(context.Background(), user); err != nil {
			s.mu.Lock()
			s.items = nil
			s.mu.Unlock()
		}
	})
}

// SetUser bascule le panier sur l'identité donnée : rechargement du snapshot
// persisté, ou panier vide si aucun (logout ⇒ vide, jamais persisté).
func (s *CartStore) SetUser(ctx context.Context, user *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.items = nil

	key := CartKey(user)
	if key == "" {
		return nil
	}

	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("lecture panier: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return fmt.Errorf("décodage panier: %w", err)
	}
	s.items = items
	return nil
}

// User retourne l'identité courante du panier (nil si anonyme).
func (s *CartStore) User() *identity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Add ajoute une unité du produit. Ligne existante ⇒ quantité +1.
func (s *CartStore) Add(ctx context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.items {
		if s.items[i].ProductID == p.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
			ImageURL:  p.ImageURL,
		})
	}

	return s.persistLocked(ctx, "updated")
}

// Remove retire une unité. Quantité 0 ⇒ la ligne disparaît. Ligne absente ⇒
// no-op.
func (s *CartStore) Remove(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		s.items[i].Quantity--
		if s.items[i].Quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		return s.persistLocked(ctx, "updated")
	}
	return nil
}

// DeleteAll supprime la ligne quelle que soit sa quantité.
func (s *CartStore) DeleteAll(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persistLocked(ctx, "updated")
		}
	}
	return nil
}

// SetQuantity fixe la quantité d'une ligne existante, plancher à 1.
func (s *CartStore) SetQuantity(ctx context.Context, productID, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 {
		n = 1
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = n
			return s.persistLocked(ctx, "updated")
		}
	}
	return nil
}

// Clear vide le panier et efface le snapshot persisté.
func (s *CartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	key := CartKey(s.user)
	if key != "" {
		if err := s.kv.Del(ctx, key); err != nil {
			s.notifyLocked("cleared")
			return fmt.Errorf("suppression snapshot panier: %w", err)
		}
	}
	s.notifyLocked("cleared")
	return nil
}

// Items retourne une copie des lignes du panier.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Quantity retourne la quantité de la ligne du produit (0 si absente).
func (s *CartStore) Quantity(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

// Count = Σ quantités
func (s *CartStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Subtotal = Σ prix × quantité
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// persistLocked sérialise les lignes sous la clé courante. Scope anonyme ⇒
// rien à écrire. L'échec d'écriture est remonté mais l'état mémoire est déjà
// appliqué.
func (s *CartStore) persistLocked(ctx context.Context, event string) error {
	defer s.notifyLocked(event)

	key := CartKey(s.user)
	if key == "" {
		return nil
	}

	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("sérialisation panier: %w", err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("sauvegarde panier: %w", err)
	}
	return nil
}

func (s *CartStore) notifyLocked(event string) {
	if s.OnChange != nil {
		s.OnChange(event)
	}
}
