package product

import (
	"net/http"
	"strings"
	"time"

	"shopkart_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

// =========================
// 🟢 UPLOAD IMAGE PRODUIT
// =========================
func UploadProductImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier manquant"})
		return
	}

	imageURL, err := services.UploadProductImage(c.Request.Context(), header)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload MinIO: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "✅ Image uploadée avec succès",
		"image_url": imageURL,
	})
}

// =========================
// 🔵 URL SIGNÉE TEMPORAIRE
// =========================
func GetSignedImageURL(c *gin.Context) {
	objectPath := strings.TrimSpace(c.Query("path"))
	if objectPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'path' manquant"})
		return
	}

	signedURL, err := services.GenerateSignedURL(c.Request.Context(), objectPath, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération URL signée"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}
