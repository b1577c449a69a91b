package routes

import (
	"kanael-cafe/handlers"
	"kanael-cafe/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public pages ───────────────────────────────────────────────
	r.GET("/", handlers.Home)
	r.GET("/menu", handlers.Menu)
	r.GET("/contact", handlers.ContactPage)
	r.POST("/contact", handlers.SubmitContact)

	// ── Cart & checkout ────────────────────────────────────────────
	r.POST("/add_to_cart/:id", handlers.AddToCart)
	r.GET("/cart", handlers.ShowCart)
	r.POST("/cart", handlers.UpdateCart)
	r.GET("/checkout", handlers.CheckoutPage)
	r.POST("/checkout", handlers.PlaceOrder)
	r.GET("/confirm/:id", handlers.Confirm)

	// ── Admin session ──────────────────────────────────────────────
	r.GET("/admin/login", handlers.LoginPage)
	r.POST("/admin/login", handlers.Login)
	r.GET("/admin/logout", handlers.Logout)

	// ── Admin panel ────────────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("", handlers.Dashboard)
		admin.GET("/menu", handlers.AdminMenu)
		admin.POST("/menu", handlers.AddMenuItem)
		admin.POST("/menu/:id/delete", handlers.DeleteMenuItem)
		admin.GET("/orders", handlers.AdminOrders)
		admin.GET("/messages", handlers.AdminMessages)
	}
}
