package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"
)

const (
	ProductCacheTTL = 10 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

const productsCacheKey = "products:all"

// --- Refresh Tokens ---

// StoreRefreshToken stocke le refresh token d'un utilisateur
func StoreRefreshToken(ctx context.Context, userID, refreshToken string) error {
	key := fmt.Sprintf("refresh:%s", userID)
	return database.Redis.Set(ctx, key, refreshToken, RefreshTokenTTL).Err()
}

// GetRefreshToken récupère le refresh token d'un utilisateur
func GetRefreshToken(ctx context.Context, userID string) (string, error) {
	key := fmt.Sprintf("refresh:%s", userID)
	return database.Redis.Get(ctx, key).Result()
}

// DeleteRefreshToken supprime le refresh token (logout)
func DeleteRefreshToken(ctx context.Context, userID string) error {
	key := fmt.Sprintf("refresh:%s", userID)
	return database.Redis.Del(ctx, key).Err()
}

// --- Cache catalogue ---

// CacheProducts met la liste complète du catalogue en cache
func CacheProducts(ctx context.Context, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, productsCacheKey, data, ProductCacheTTL)
}

// GetCachedProducts retourne le catalogue en cache, ou nil si absent
func GetCachedProducts(ctx context.Context) []models.Product {
	data, err := database.Redis.Get(ctx, productsCacheKey).Result()
	if err != nil || data == "" {
		return nil
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil
	}
	return products
}

// InvalidateProductCache invalide le cache catalogue (création/mise à jour produit)
func InvalidateProductCache(ctx context.Context) {
	database.Redis.Del(ctx, productsCacheKey)
}
