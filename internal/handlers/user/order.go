package user

import (
	"errors"
	"log"
	"net/http"
	"os"

	"shopkart_back_end/internal/orders"
	"shopkart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// ✅ Récupère toutes les commandes de l'utilisateur connecté
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	gateway := orders.NewGateway()
	list, err := gateway.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Println("❌ Erreur récupération commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commandes"})
		return
	}

	log.Printf("✅ %d commandes trouvées pour user %s", len(list), userID)

	c.JSON(http.StatusOK, gin.H{"orders": list})
}

// ✅ Récupère une commande spécifique par ID
func GetOrderByID(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	gateway := orders.NewGateway()
	order, err := gateway.GetByID(c.Request.Context(), orderID)
	if errors.Is(err, orders.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande"})
		return
	}

	// ✅ Sécurité : la commande doit appartenir à l'utilisateur
	if order.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// 🧾 GET /api/orders/:id/invoice — facture PDF de la commande
func GetOrderInvoice(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	gateway := orders.NewGateway()
	order, err := gateway.GetByID(c.Request.Context(), orderID)
	if errors.Is(err, orders.ErrOrderNotFound) || (err == nil && order.UserID != userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commande"})
		return
	}

	// QR UPI sur la facture pour les commandes payées en UPI
	qrBase64 := ""
	if order.PaymentMethod == "UPI" {
		merchantVPA := os.Getenv("MERCHANT_UPI_VPA")
		if merchantVPA == "" {
			merchantVPA = "shopkart@upi"
		}
		qrBase64, err = utils.GenerateUPIQR(merchantVPA, "SHOPKART", order.Total, "FACT-"+order.ID)
		if err != nil {
			log.Printf("⚠️ Erreur génération QR facture: %v", err)
		}
	}

	pdf, err := utils.RenderInvoicePDF(utils.GetFrontendInvoiceBaseURL(), order.ID, qrBase64)
	if err != nil {
		log.Printf("❌ Erreur rendu PDF: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération facture"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=facture_"+order.ID+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
