package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/identity"
	"shopkart_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket gère la synchronisation temps réel du panier.
// Chaque connexion possède son propre notifier d'identité : le store s'y
// abonne via Bind et se recharge à chaque événement publié sur le canal
// Redis du panier.
func CartWebSocket(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(401, gin.H{"error": "Non authentifié"})
		return
	}

	// Upgrade vers WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	cart := store.NewCartStore(store.NewRedisKV(database.Redis))
	sessions := identity.NewNotifier()
	unbind := cart.Bind(sessions)
	defer unbind()

	// charge le snapshot initial du panier
	sessions.Publish(user)

	// S'abonner au canal Redis pour ce user
	pubsub := database.Redis.Subscribe(ctx, store.CartKey(user))
	defer pubsub.Close()

	ch := pubsub.Channel()

	// Envoyer un message de connexion
	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	// Boucle d'écoute
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload != "updated" && msg.Payload != "cleared" {
				continue
			}

			// re-publication de l'identité = rechargement du snapshot
			sessions.Publish(user)

			response := map[string]interface{}{
				"type":  "cart_updated",
				"items": cart.Items(),
				"total": cart.Subtotal(),
				"count": cart.Count(),
			}

			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
