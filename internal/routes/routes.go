package routes

import (
	"os"
	"time"

	"shopkart_back_end/internal/handlers/admin"
	"shopkart_back_end/internal/handlers/product"
	"shopkart_back_end/internal/handlers/user"
	"shopkart_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// 🔓 Authentification
	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), user.Register)
		auth.POST("/login", middleware.LoginRateLimit(), user.Login)
		auth.POST("/logout", middleware.AuthRequired(), user.Logout)
		auth.POST("/refresh", user.RefreshToken)
		auth.POST("/forgot-password", user.ForgotPassword)
		auth.POST("/reset-password", user.ResetPassword)
		auth.GET("/:provider", user.OAuthBegin)
		auth.GET("/:provider/callback", user.OAuthCallback)
	}

	// 🔓 Catalogue public
	products := api.Group("/products")
	{
		products.GET("", product.GetAllProducts)
		products.GET("/search", product.SearchProducts)
		products.GET("/:id", product.GetProductByID)
	}

	// 🔒 Back-office
	backoffice := api.Group("/admin", middleware.AuthRequired())
	{
		backoffice.POST("/products", product.CreateProduct)
		backoffice.POST("/products/images", product.UploadProductImage)
		backoffice.GET("/products/images/signed", product.GetSignedImageURL)
		backoffice.GET("/orders", admin.GetAllOrders)
	}

	// 🔒 Panier
	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.GET("", user.GetCart)
		cart.GET("/ws", user.CartWebSocket)
		cart.POST("/add", user.AddToCart)
		cart.POST("/quantity", user.SetCartQuantity)
		cart.DELETE("/clear", user.ClearCart)
		cart.DELETE("/:productId", user.RemoveFromCart)
		cart.DELETE("/:productId/all", user.DeleteFromCart)
	}

	// 🔒 Wishlist
	wishlist := api.Group("/wishlist", middleware.AuthRequired())
	{
		wishlist.GET("", user.GetWishlist)
		wishlist.POST("/toggle", user.ToggleWishlist)
	}

	// 🔒 Profil
	profile := api.Group("/profile", middleware.AuthRequired())
	{
		profile.GET("", user.GetProfile)
		profile.PUT("", user.UpdateProfile)
	}

	// 🔒 Checkout
	checkout := api.Group("/checkout", middleware.AuthRequired())
	{
		checkout.GET("/summary", user.GetCheckoutSummary)
		checkout.POST("/address", user.ValidateAddressStep)
		checkout.POST("/payment", user.ValidatePaymentStep)
		checkout.POST("/place", user.PlaceOrder)
	}

	// 🔒 Commandes
	orders := api.Group("/orders", middleware.AuthRequired())
	{
		orders.GET("", user.GetMyOrders)
		orders.GET("/:id", user.GetOrderByID)
		orders.GET("/:id/invoice", user.GetOrderInvoice)
	}
}
