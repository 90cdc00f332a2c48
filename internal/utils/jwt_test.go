package utils

import (
	"strings"
	"testing"
	"time"

	"shopkart_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT_ClaimsRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	user := models.User{ID: "u-123", Email: "asha@example.com", Name: "Asha Verma"}
	tokenString, err := GenerateJWT(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u-123", claims["user_id"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, "Asha Verma", claims["name"])

	exp := int64(claims["exp"].(float64))
	assert.Greater(t, exp, time.Now().Unix())
	assert.LessOrEqual(t, exp, time.Now().Add(TokenTTL).Unix())
}

func TestGenerateJWT_WrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	tokenString, err := GenerateJWT(models.User{ID: "u-123"})
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("autre_secret"), nil
	})
	assert.Error(t, err)
}

func TestGenerateUPIQR(t *testing.T) {
	qr, err := GenerateUPIQR("shopkart@upi", "ShopKart", 95097, "order-42")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
	assert.Greater(t, len(qr), len("data:image/png;base64,"))
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!mot-de-passe")
	require.NoError(t, err)
	assert.NotContains(t, hash, "S3cret")

	ok, err := VerifyPassword("S3cret!mot-de-passe", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("mauvais", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}
