package utils

import (
	"os"
	"time"

	"shopkart_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL est la durée de vie du token d'accès. Le refresh token
// stocké dans Redis (cache.StoreRefreshToken) dure 7 jours, lui.
const TokenTTL = 24 * time.Hour

// GenerateJWT signe un token HS256 pour l'utilisateur. On embarque le
// nom dans les claims pour que le front puisse afficher "Bonjour Asha"
// sans appeler /api/profile.
func GenerateJWT(user models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
