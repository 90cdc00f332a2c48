package user

import (
	"context"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/identity"
	"shopkart_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// currentUser reconstruit l'identité depuis les claims posés par le
// middleware JWT.
func currentUser(c *gin.Context) *identity.Identity {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil
	}
	return &identity.Identity{ID: userID, Email: c.GetString("email")}
}

// cartStore construit le store panier de la requête courante, chargé depuis
// Redis et branché sur le canal pubsub de synchro WebSocket.
func cartStore(c *gin.Context, user *identity.Identity) (*store.CartStore, error) {
	cs := store.NewCartStore(store.NewRedisKV(database.Redis))
	cs.OnChange = func(event string) {
		database.Redis.Publish(context.Background(), store.CartKey(user), event)
	}
	if err := cs.SetUser(c.Request.Context(), user); err != nil {
		return nil, err
	}
	return cs, nil
}

// wishlistStore construit le store wishlist de la requête courante.
func wishlistStore(c *gin.Context, user *identity.Identity) (*store.WishlistStore, error) {
	ws := store.NewWishlistStore(store.NewRedisKV(database.Redis))
	if err := ws.SetUser(c.Request.Context(), user); err != nil {
		return nil, err
	}
	return ws, nil
}
