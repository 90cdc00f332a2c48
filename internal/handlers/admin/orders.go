package admin

import (
	"log"
	"net/http"

	"shopkart_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

// 📦 GET /api/admin/orders — toutes les commandes de la boutique
func GetAllOrders(c *gin.Context) {
	gateway := orders.NewGateway()
	list, err := gateway.ListAll(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur récupération commandes back-office:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": list,
		"count":  len(list),
	})
}
