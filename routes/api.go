package routes

import (
	"github.com/gin-gonic/gin"
	apiControllers "github.com/webshop-demo/shop-api/controllers/api"
	productcontroller "github.com/webshop-demo/shop-api/controllers/product"
	"github.com/webshop-demo/shop-api/middleware"
	"gorm.io/gorm"
)

// SetupAPIRoutes registers the REST collection endpoints. Reads require a
// bearer token; catalog and resource writes additionally need the admin API
// key. The suggestions endpoint is public — it feeds the search box.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	api.GET("/suggestions", productcontroller.SuggestionsHandler(db))

	authed := api.Group("")
	authed.Use(middleware.ValidateToken)
	{
		authed.GET("/products", apiControllers.ListProducts(db))
		authed.GET("/products/:id", apiControllers.GetProduct(db))
		authed.GET("/carts", apiControllers.ListCarts(db))
		authed.GET("/carts/:id", apiControllers.GetCart(db))
		authed.GET("/orders", apiControllers.ListOrders(db))
		authed.GET("/orders/:id", apiControllers.GetOrder(db))
	}

	admin := api.Group("")
	admin.Use(middleware.ValidateToken, middleware.ValidateAPIKey)
	{
		admin.POST("/products", apiControllers.CreateProduct(db))
		admin.PUT("/products/:id", apiControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", apiControllers.DeleteProduct(db))
		admin.POST("/carts", apiControllers.CreateCart(db))
		admin.PUT("/carts/:id", apiControllers.UpdateCart(db))
		admin.DELETE("/carts/:id", apiControllers.DeleteCart(db))
		admin.POST("/orders", apiControllers.CreateOrder(db))
		admin.PUT("/orders/:id", apiControllers.UpdateOrder(db))
		admin.DELETE("/orders/:id", apiControllers.DeleteOrder(db))
	}
}
