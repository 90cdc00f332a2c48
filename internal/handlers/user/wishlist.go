package user

import (
	"errors"
	"log"
	"net/http"

	"shopkart_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

// GetWishlist récupère la wishlist de l'utilisateur
func GetWishlist(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	wishlist, err := wishlistStore(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": user.ID,
		"items":   wishlist.Items(),
	})
}

// ToggleWishlist ajoute le produit s'il est absent, le retire sinon
func ToggleWishlist(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	var req struct {
		ProductID int `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// vérifier que le produit existe
	product, err := catalog.GetProduct(c.Request.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	wishlist, err := wishlistStore(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture wishlist"})
		return
	}

	if err := wishlist.Toggle(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde wishlist"})
		return
	}

	if wishlist.Contains(product.ID) {
		log.Printf("⭐ Produit %d ajouté à la wishlist de %s", product.ID, user.ID)
	} else {
		log.Printf("🗑️ Produit %d retiré de la wishlist de %s", product.ID, user.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"in_wishlist": wishlist.Contains(product.ID),
		"items":       wishlist.Items(),
	})
}
