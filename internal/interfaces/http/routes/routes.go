// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/account"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// Services are the domain services the routes are served by
type Services struct {
	Catalog    *catalog.Service
	Calculator *pricing.Calculator
	Checkout   *checkout.Service
	Accounts   *account.Service
	Logger     logrus.FieldLogger
}

// SetupRoutes registers every storefront route on rg. rg must already run the session middleware.
func SetupRoutes(rg *gin.RouterGroup, svc Services) {
	SetupCatalogRoutes(rg, svc)
	SetupCartRoutes(rg, svc)
	SetupCheckoutRoutes(rg, svc)
	SetupAuthRoutes(rg, svc)
	SetupAccountRoutes(rg, svc)
}

// SetupCatalogRoutes sets up menu, home and product routes
func SetupCatalogRoutes(rg *gin.RouterGroup, svc Services) {
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)

	rg.GET("/menu", catalogHandler.GetMenu)
	rg.GET("/home", catalogHandler.GetHome)
	rg.GET("/categories", catalogHandler.GetCategories)
	rg.GET("/search/suggestions", catalogHandler.GetSuggestions)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart routes. Guests and customers share them.
func SetupCartRoutes(rg *gin.RouterGroup, svc Services) {
	cartHandler := handlers.NewCartHandler(svc.Catalog, svc.Calculator)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)

		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)

		cart.POST("/promo", cartHandler.ApplyPromo)
		cart.DELETE("/promo", cartHandler.RemovePromo)
	}
}

// SetupCheckoutRoutes sets up the checkout wizard routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, svc Services) {
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("", checkoutHandler.GetCheckout)
		checkout.PUT("/shipping", checkoutHandler.SubmitShipping)
		checkout.PUT("/payment", checkoutHandler.SubmitPayment)
		checkout.POST("/back", checkoutHandler.Back)
		checkout.POST("/orders", checkoutHandler.PlaceOrder)
	}
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, svc Services) {
	authHandler := handlers.NewAuthHandler(svc.Accounts, svc.Logger)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}

// SetupAccountRoutes sets up the customer's account routes
func SetupAccountRoutes(rg *gin.RouterGroup, svc Services) {
	accountHandler := handlers.NewAccountHandler(svc.Accounts)

	protected := rg.Group("")
	protected.Use(middleware.RequireLogin()) // All account routes require a signed-in session
	{
		protected.GET("/account", accountHandler.GetAccount)
		protected.GET("/orders", accountHandler.ListOrders)
		protected.GET("/orders/:id", accountHandler.GetOrder)
	}
}
