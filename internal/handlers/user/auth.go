package user

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"shopkart_back_end/internal/cache"
	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/middleware"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
)

// ================== AUTH LOCALE ==================

func Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
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

	// email déjà pris pour un compte local ?
	var existingID string
	err = session.Query(`SELECT user_id FROM users WHERE email = ? AND provider = 'local' ALLOW FILTERING`,
		input.Email).WithContext(c.Request.Context()).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Un compte avec cet email existe déjà"})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Provider: "local",
	}

	err = session.Query(`INSERT INTO users (user_id, name, email, password, provider, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.Password, user.Provider, time.Now()).
		WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Printf("❌ Erreur création utilisateur: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	refreshToken := uuid.NewString()
	cache.StoreRefreshToken(c.Request.Context(), user.ID, refreshToken)

	log.Printf("✅ Compte créé pour %s", user.Email)

	c.JSON(http.StatusCreated, gin.H{
		"token":         token,
		"refresh_token": refreshToken,
		"userId":        user.ID,
		"email":         user.Email,
		"name":          user.Name,
	})
}

func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
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

	var user models.User
	err = session.Query(`SELECT user_id, name, email, password FROM users
		WHERE email = ? AND provider = 'local' ALLOW FILTERING`, input.Email).
		WithContext(c.Request.Context()).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email ou mot de passe incorrect"})
		return
	}

	// login réussi : on remet le compteur anti-bruteforce à zéro
	middleware.ResetLoginAttempts(input.Email)

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	refreshToken := uuid.NewString()
	cache.StoreRefreshToken(c.Request.Context(), user.ID, refreshToken)

	log.Printf("🔓 Connexion de %s", user.Email)

	c.JSON(http.StatusOK, gin.H{
		"token":         token,
		"refresh_token": refreshToken,
		"userId":        user.ID,
		"email":         user.Email,
		"name":          user.Name,
	})
}

func Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	cache.DeleteRefreshToken(c.Request.Context(), userID)

	log.Printf("🔒 Déconnexion de %s", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnecté"})
}

func RefreshToken(c *gin.Context) {
	var input struct {
		UserID       string `json:"user_id" binding:"required"`
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	stored, err := cache.GetRefreshToken(c.Request.Context(), input.UserID)
	if err != nil || stored != input.RefreshToken {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token invalide"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var user models.User
	err = session.Query(`SELECT user_id, name, email FROM users WHERE user_id = ?`, input.UserID).
		WithContext(c.Request.Context()).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	// rotation du refresh token
	newRefresh := uuid.NewString()
	cache.StoreRefreshToken(c.Request.Context(), user.ID, newRefresh)

	c.JSON(http.StatusOK, gin.H{
		"token":         token,
		"refresh_token": newRefresh,
	})
}

// ================== OAUTH (Google) ==================

// withProvider recopie le provider du path dans la query pour gothic
func withProvider(c *gin.Context) {
	q := c.Request.URL.Query()
	if q.Get("provider") == "" {
		q.Set("provider", c.Param("provider"))
		c.Request.URL.RawQuery = q.Encode()
	}
}

// OAuthBegin démarre le flow OAuth du provider (/api/auth/google)
func OAuthBegin(c *gin.Context) {
	withProvider(c)
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// OAuthCallback termine le flow OAuth : upsert du compte puis redirection
// vers le front avec le JWT en query
func OAuthCallback(c *gin.Context) {
	withProvider(c)
	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("❌ Erreur OAuth callback: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentification OAuth échouée"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// compte existant pour ce provider ?
	var user models.User
	err = session.Query(`SELECT user_id, name, email FROM users
		WHERE email = ? AND provider = ? ALLOW FILTERING`,
		gothUser.Email, gothUser.Provider).
		WithContext(c.Request.Context()).
		Scan(&user.ID, &user.Name, &user.Email)

	if err != nil {
		// première connexion : on crée le compte
		user = models.User{
			ID:       uuid.NewString(),
			Name:     gothUser.Name,
			Email:    gothUser.Email,
			Provider: gothUser.Provider,
		}
		err = session.Query(`INSERT INTO users (user_id, name, email, password, provider, created_at)
			VALUES (?, ?, ?, '', ?, ?)`,
			user.ID, user.Name, user.Email, user.Provider, time.Now()).
			WithContext(c.Request.Context()).Exec()
		if err != nil {
			log.Printf("❌ Erreur création compte OAuth: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
			return
		}
		log.Printf("✅ Compte %s créé via %s", user.Email, gothUser.Provider)
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf("%s/login?token=%s", frontendURL, token))
}
