package user

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const resetTokenTTL = 1 * time.Hour

// ForgotPassword génère un lien de réinitialisation et l'envoie par mail.
// Répond toujours 200 pour ne pas révéler si l'email existe.
func ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var userID string
	err = session.Query(`SELECT user_id FROM users WHERE email = ? AND provider = 'local' ALLOW FILTERING`,
		input.Email).WithContext(c.Request.Context()).Scan(&userID)
	if err != nil {
		// pas de compte local : même réponse
		c.JSON(http.StatusOK, gin.H{"message": "Si ce compte existe, un email a été envoyé"})
		return
	}

	token := uuid.NewString()
	database.Redis.Set(c.Request.Context(), "pwdreset:"+token, userID, resetTokenTTL)

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", frontendURL, token)

	// envoi en arrière-plan, le handler ne bloque pas sur le SMTP
	go func() {
		if err := utils.SendPasswordResetEmail(input.Email, resetLink); err != nil {
			log.Printf("❌ Erreur envoi email reset: %v", err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{"message": "Si ce compte existe, un email a été envoyé"})
}

// ResetPassword consomme le token de réinitialisation et change le mot de passe
func ResetPassword(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	key := "pwdreset:" + input.Token
	userID, err := database.Redis.Get(c.Request.Context(), key).Result()
	if err != nil || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Lien expiré ou invalide"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur réinitialisation"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	err = session.Query(`UPDATE users SET password = ? WHERE user_id = ?`, hashed, userID).
		WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Printf("❌ Erreur mise à jour mot de passe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur réinitialisation"})
		return
	}

	// token à usage unique
	database.Redis.Del(c.Request.Context(), key)

	log.Printf("🔑 Mot de passe réinitialisé pour %s", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe mis à jour"})
}
