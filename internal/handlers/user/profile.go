package user

import (
	"errors"
	"log"
	"net/http"

	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GetProfile retourne les infos de livraison sauvegardées. Profil jamais
// rempli ⇒ profil vide, pas une erreur.
func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var p models.Profile
	err = session.Query(`
		SELECT full_name, phone, street, city, state, pincode
		FROM profiles WHERE user_id = ?
	`, userID).WithContext(c.Request.Context()).
		Scan(&p.FullName, &p.Phone, &p.Street, &p.City, &p.State, &p.Pincode)
	if err != nil && !errors.Is(err, gocql.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture profil"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile sauvegarde les infos de livraison de l'utilisateur
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var p models.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	err = session.Query(`
		INSERT INTO profiles (user_id, full_name, phone, street, city, state, pincode)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, userID, p.FullName, p.Phone, p.Street, p.City, p.State, p.Pincode).
		WithContext(c.Request.Context()).Exec()
	if err != nil {
		log.Printf("❌ Erreur sauvegarde profil: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde profil"})
		return
	}

	c.JSON(http.StatusOK, p)
}
