package user

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"shopkart_back_end/internal/cache"
	"shopkart_back_end/internal/checkout"
	"shopkart_back_end/internal/database"
	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/orders"
	"shopkart_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// ✅ Valide l'adresse de livraison avant de passer au paiement
func ValidateAddressStep(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse invalide"})
		return
	}

	if err := checkout.ValidateAddress(addr); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "next": checkout.StepPayment.String()})
}

// ✅ Valide la méthode de paiement avant le récapitulatif.
// Pour l'UPI on renvoie aussi le QR code de paiement à afficher côté front.
func ValidatePaymentStep(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paiement invalide"})
		return
	}

	if err := checkout.ValidatePayment(payment); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"valid": true, "next": checkout.StepReview.String()}

	if payment.Method == models.PaymentUPI {
		cart, err := cartStore(c, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur chargement panier"})
			return
		}
		vpa := os.Getenv("MERCHANT_UPI_VPA")
		if vpa == "" {
			vpa = "shopkart@upi"
		}
		qr, err := utils.GenerateUPIQR(vpa, "ShopKart", checkout.Total(cart.Subtotal()), payment.UPIID)
		if err != nil {
			log.Println("❌ Erreur génération QR UPI:", err)
		} else {
			resp["upi_qr"] = qr
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ✅ Récapitulatif du checkout : articles, sous-total, frais de port, total
func GetCheckoutSummary(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	cart, err := cartStore(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur chargement panier"})
		return
	}

	subtotal := cart.Subtotal()
	c.JSON(http.StatusOK, gin.H{
		"items":    cart.Items(),
		"count":    cart.Count(),
		"subtotal": subtotal,
		"shipping": checkout.Shipping(subtotal),
		"total":    checkout.Total(subtotal),
	})
}

// ✅ Passe la commande : adresse + paiement re-validés, commit unique,
// panier vidé en cas de succès, email de confirmation envoyé en arrière-plan
func PlaceOrder(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	var body struct {
		Address models.Address `json:"address"`
		Payment models.Payment `json:"payment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	// un seul commit à la fois par compte, même depuis deux onglets
	if !cache.AcquireCheckoutLock(c.Request.Context(), database.Redis, user.ID) {
		c.JSON(http.StatusConflict, gin.H{"error": "Une commande est déjà en cours d'envoi"})
		return
	}
	defer cache.ReleaseCheckoutLock(c.Request.Context(), database.Redis, user.ID)

	cart, err := cartStore(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur chargement panier"})
		return
	}

	flow := checkout.NewFlow(cart, orders.NewGateway())

	if err := flow.SubmitAddress(body.Address); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "step": checkout.StepAddress.String()})
		return
	}
	if err := flow.SubmitPayment(body.Payment); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "step": checkout.StepPayment.String()})
		return
	}

	orderID, err := flow.PlaceOrder(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "Panier vide"})
		case errors.Is(err, checkout.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		default:
			log.Println("❌ Erreur soumission commande:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Échec de la commande, veuillez réessayer"})
		}
		return
	}

	log.Printf("🛒 Commande %s passée par %s", orderID, user.Email)

	// confirmation par email hors du chemin de la réponse
	go func(orderID, email string) {
		order, err := orders.NewGateway().GetByID(context.Background(), orderID)
		if err != nil {
			log.Println("❌ Erreur relecture commande pour email:", err)
			return
		}
		if err := utils.SendOrderConfirmationEmail(email, *order, nil); err != nil {
			log.Println("❌ Erreur envoi email confirmation:", err)
		}
	}(orderID, user.Email)

	c.JSON(http.StatusCreated, gin.H{
		"id":     orderID,
		"status": models.OrderStatusPlaced,
		"step":   checkout.StepSuccess.String(),
	})
}
