package routes

import (
	"storefront/controllers"
	"storefront/entity"
	"storefront/middlewares"
	"storefront/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	JWTSecret string
	Metrics   prometheus.Gatherer

	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Cart    *controllers.CartController
	Order   *controllers.OrderController
	Admin   *controllers.AdminController
	Feed    *ws.OrderFeedHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	auth := middlewares.AuthMiddleware(d.JWTSecret)
	admin := middlewares.AuthMiddleware(d.JWTSecret, entity.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", d.Auth.Register)
		a.POST("/login", d.Auth.Login)
		a.GET("/me", auth, d.Auth.Me)
	}

	// Catalog (public)
	r.GET("/products", d.Product.List)
	r.GET("/products/:id", d.Product.Detail)

	// Cart (cookie session, login not required)
	cart := r.Group("/cart", middlewares.CartSession())
	{
		cart.GET("", d.Cart.Get)
		cart.POST("/items", d.Cart.Add)
		cart.PATCH("/items/qty", d.Cart.UpdateQty)
		cart.DELETE("/items", d.Cart.RemoveItem)
		cart.DELETE("", d.Cart.Clear)
	}

	// Orders (user)
	r.POST("/checkout", auth, middlewares.CartSession(), d.Order.Checkout)
	u := r.Group("/orders", auth)
	{
		u.GET("", d.Order.ListForMe)
		u.GET("/:id", d.Order.Detail)
	}

	// Admin
	ad := r.Group("/admin", admin, middlewares.AdminScope())
	{
		ad.GET("/products/:id/edit", d.Product.Edit)
		ad.POST("/products", d.Product.Create)
		ad.PUT("/products/:id", d.Product.Update)

		ad.GET("/carts/:token", d.Admin.Cart)

		ad.GET("/orders/:id", d.Admin.Order)
		ad.PATCH("/orders/:id/complete", d.Admin.Complete)
		ad.PATCH("/orders/:id/cancel", d.Admin.Cancel)
	}

	// WebSocket feed of placed orders (token in query or header)
	if d.Feed != nil {
		r.GET("/admin/ws/orders", middlewares.WSAuthMiddleware(d.JWTSecret, entity.RoleAdmin), d.Feed.HandleWebSocket)
	}
}
