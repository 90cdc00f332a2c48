package identity

import "sync"

// Identity est l'utilisateur connecté tel que vu par les stores.
type Identity struct {
	ID    string `json:"user_id"`
	Email string `json:"email"`
}

// Notifier diffuse les changements de session (login/logout) aux stores
// abonnés. Publish(nil) signifie "déconnecté".
type Notifier struct {
	mu   sync.Mutex
	subs map[int]func(*Identity)
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(*Identity))}
}

// Subscribe enregistre un callback et retourne la fonction de désabonnement.
// Le callback est appelé de façon synchrone à chaque Publish.
func (n *Notifier) Subscribe(fn func(*Identity)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Publish notifie tous les abonnés du nouvel état de session.
func (n *Notifier) Publish(user *Identity) {
	n.mu.Lock()
	fns := make([]func(*Identity), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
