package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/webshop-demo/shop-api/middleware"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := GetOrCreateCart(db, userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("failed to load cart")
			c.String(http.StatusInternalServerError, "Failed to load cart")
			return
		}

		c.HTML(http.StatusOK, "cart_detail.html", gin.H{
			"Cart":     cart,
			"Total":    CartTotal(cart.Items),
			"Flashes":  middleware.TakeFlashes(c),
			"LoggedIn": true,
		})
	}
}

// POST /cart/add/:product_id
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			middleware.Flash(c, "Product not found.")
			c.Redirect(http.StatusFound, "/products")
			return
		}
		quantity, err := strconv.Atoi(c.DefaultPostForm("quantity", "1"))
		if err != nil {
			middleware.Flash(c, "Invalid quantity.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		result, err := AddItem(db, userID, uint(productID), quantity)
		switch {
		case errors.Is(err, models.ErrInvalidQuantity):
			middleware.Flash(c, "Invalid quantity.")
			c.Redirect(http.StatusFound, "/cart")
			return
		case errors.Is(err, models.ErrProductNotFound):
			middleware.Flash(c, "Product not found.")
			c.Redirect(http.StatusFound, "/products")
			return
		case err != nil:
			log.Error().Err(err).Str("user_id", userID).Uint64("product_id", productID).Msg("failed to add cart item")
			c.String(http.StatusInternalServerError, "Failed to add item to cart")
			return
		}

		middleware.Flash(c, fmt.Sprintf("%s (x%d) added to cart!", result.Product.Name, quantity))
		c.Redirect(http.StatusFound, "/cart")
	}
}

// POST /cart/remove/:item_id
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			middleware.Flash(c, "Cart item not found.")
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		result, err := RemoveItem(db, userID, uint(itemID))
		switch {
		case errors.Is(err, models.ErrCartItemNotFound):
			middleware.Flash(c, "Cart item not found.")
			c.Redirect(http.StatusFound, "/cart")
			return
		case err != nil:
			log.Error().Err(err).Str("user_id", userID).Uint64("item_id", itemID).Msg("failed to remove cart item")
			c.String(http.StatusInternalServerError, "Failed to remove item from cart")
			return
		}

		middleware.Flash(c, fmt.Sprintf("%s removed from cart!", result.ProductName))
		c.Redirect(http.StatusFound, "/cart")
	}
}
