package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cartControllers "github.com/webshop-demo/shop-api/controllers/cart"
	orderControllers "github.com/webshop-demo/shop-api/controllers/order"
	productcontroller "github.com/webshop-demo/shop-api/controllers/product"
	userControllers "github.com/webshop-demo/shop-api/controllers/user"
	"github.com/webshop-demo/shop-api/middleware"
	"gorm.io/gorm"
)

// SetupWebRoutes registers the human-facing pages. Browsing is public; cart,
// order, and profile pages require a session.
func SetupWebRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/products")
	})

	// ──────────────── Browse Products ────────────────
	r.GET("/products", productcontroller.ListProductsHandler(db))
	r.GET("/products/:id", productcontroller.ProductDetailHandler(db))

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := authed.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCartHandler(db))
			cartGroup.POST("/add/:product_id", cartControllers.AddToCartHandler(db))
			cartGroup.POST("/remove/:item_id", cartControllers.RemoveFromCartHandler(db))
		}

		// ──────────────── Orders ────────────────
		orderGroup := authed.Group("/orders")
		{
			orderGroup.GET("", orderControllers.ListOrdersHandler(db))
			orderGroup.GET("/purchase", orderControllers.CheckoutPreviewHandler(db))
			orderGroup.POST("/place", orderControllers.PlaceOrderHandler(db))
			orderGroup.POST("/cancel/:order_id/:item_id", orderControllers.CancelOrderItemHandler(db))
		}

		// ──────────────── Profile ────────────────
		authed.GET("/profile", userControllers.ProfileHandler(db))
		authed.GET("/profile/edit", userControllers.EditProfilePageHandler(db))
		authed.POST("/profile/edit", userControllers.EditProfileHandler(db))
	}
}
