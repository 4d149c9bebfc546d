package routes

import (
	"github.com/gin-gonic/gin"

	"vibeshop_front_end/internal/handlers"
	"vibeshop_front_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	// Catalogue
	r.GET("/", middleware.SearchRateLimit(), h.Home)
	r.GET("/product/:id", h.ProductPage)
	r.POST("/product/:id/reviews", h.SubmitReview)

	// Session
	r.GET("/login", h.LoginPage)
	r.POST("/login", middleware.LoginRateLimit(), h.Login)
	r.POST("/logout", h.Logout)

	// Panier
	r.GET("/cart", h.CartPage)
	r.POST("/cart/add", h.CartAdd)
	r.POST("/cart/increment/:id", h.CartIncrement)
	r.POST("/cart/decrement/:id", h.CartDecrement)
	r.POST("/cart/remove/:id", h.CartRemove)
	r.GET("/cart/ws", h.CartWS)

	// Commande
	r.GET("/checkout", h.CheckoutPage)
	r.POST("/checkout", h.PlaceOrder)
	r.GET("/orders", h.OrdersPage)

	// Admin
	r.GET("/admin", h.AdminPage)
	r.POST("/admin/products", middleware.RequireAdmin, h.AdminCreate)
	r.DELETE("/admin/products/:id", middleware.RequireAdmin, h.AdminDelete)

	// Préférences
	r.POST("/theme/toggle", h.ToggleTheme)
}
