package product

import (
	"log"
	"net/http"
	"strings"

	"shopkart_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// 🔍 Recherche plein texte des produits via Elasticsearch
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'q' manquant"})
		return
	}

	products, err := services.SearchProducts(query)
	if err != nil {
		log.Println("❌ Erreur recherche Elasticsearch:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche produits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(products),
		"results": products,
	})
}
