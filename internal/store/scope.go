package store

import "shopkart_back_end/internal/identity"

// Clés de persistance par utilisateur. La politique est : une clé par user_id,
// scope anonyme vide et jamais persisté. user == nil ⇒ pas de clé.

func CartKey(user *identity.Identity) string {
	if user == nil || user.ID == "" {
		return ""
	}
	return "cart:" + user.ID
}

func WishlistKey(user *identity.Identity) string {
	if user == nil || user.ID == "" {
		return ""
	}
	return "wishlist:" + user.ID
}
