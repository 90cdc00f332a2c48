package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckoutLockTTL borne la durée du verrou de commande : si le serveur
// meurt entre SetNX et Del, l'utilisateur n'est bloqué que 30 secondes.
const CheckoutLockTTL = 30 * time.Second

// Locker est la partie de redis.Client dont le verrou a besoin.
type Locker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// AcquireCheckoutLock pose un verrou SETNX par utilisateur le temps de
// soumettre la commande. Deux POST /checkout/place simultanés du même
// compte : un seul passe, l'autre reçoit false.
func AcquireCheckoutLock(ctx context.Context, rdb Locker, userID string) bool {
	key := fmt.Sprintf("checkout_lock:%s", userID)
	ok, err := rdb.SetNX(ctx, key, "1", CheckoutLockTTL).Result()
	if err != nil {
		// Redis indisponible ⇒ on laisse passer, le flow reste le garde-fou
		log.Println("⚠️  Verrou checkout indisponible:", err)
		return true
	}
	return ok
}

// ReleaseCheckoutLock libère le verrou une fois la soumission terminée.
func ReleaseCheckoutLock(ctx context.Context, rdb Locker, userID string) {
	key := fmt.Sprintf("checkout_lock:%s", userID)
	rdb.Del(ctx, key)
}
