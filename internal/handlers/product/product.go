package product

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"shopkart_back_end/internal/catalog"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// 🔵 Lister tous les produits du catalogue (cache Redis puis Scylla)
func GetAllProducts(c *gin.Context) {
	products, err := catalog.ListProducts(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur récupération produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produits"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// 🔵 Récupérer un produit par son ID
func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	p, err := catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération produit"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// 🟢 Créer ou mettre à jour un produit, puis l'indexer dans Elasticsearch
func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if p.ID == 0 || p.Name == "" || p.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les champs 'id', 'name' et 'price' sont obligatoires"})
		return
	}

	if err := catalog.SaveProduct(c.Request.Context(), p); err != nil {
		log.Println("❌ Erreur sauvegarde produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde produit"})
		return
	}

	services.IndexProduct(p)

	c.JSON(http.StatusCreated, gin.H{"id": p.ID})
}
