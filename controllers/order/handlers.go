package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	cartControllers "github.com/webshop-demo/shop-api/controllers/cart"
	"github.com/webshop-demo/shop-api/middleware"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		orders, err := ListOrders(db, userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
			c.String(http.StatusInternalServerError, "Failed to load orders")
			return
		}
		log.Info().Str("user_id", userID).Int("count", len(orders)).Msg("fetched orders")

		c.HTML(http.StatusOK, "order_list.html", gin.H{
			"Orders":   orders,
			"Flashes":  middleware.TakeFlashes(c),
			"LoggedIn": true,
		})
	}
}

// GET /orders/purchase
func CheckoutPreviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := cartControllers.GetOrCreateCart(db, userID)
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("failed to load cart for checkout")
			c.String(http.StatusInternalServerError, "Failed to load cart")
			return
		}
		if len(cart.Items) == 0 {
			middleware.Flash(c, "Your cart is empty!")
			c.Redirect(http.StatusFound, "/cart")
			return
		}

		c.HTML(http.StatusOK, "purchase_order.html", gin.H{
			"Cart":     cart,
			"Total":    cartControllers.CartTotal(cart.Items),
			"Flashes":  middleware.TakeFlashes(c),
			"LoggedIn": true,
		})
	}
}

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		order, err := PlaceOrder(db, userID)
		if errors.Is(err, models.ErrEmptyCart) {
			middleware.Flash(c, "Your cart is empty!")
			c.Redirect(http.StatusFound, "/cart")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("failed to place order")
			c.String(http.StatusInternalServerError, "Failed to place order")
			return
		}

		log.Info().
			Str("user_id", userID).
			Uint("order_id", order.ID).
			Int("order_number", order.UserOrderNumber).
			Str("total", order.TotalAmount.String()).
			Msg("order placed")

		middleware.Flash(c, "Order placed successfully! Payment gateway integration pending.")
		c.Redirect(http.StatusFound, "/orders")
	}
}

// POST /orders/cancel/:order_id/:item_id
func CancelOrderItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		orderID, err1 := strconv.ParseUint(c.Param("order_id"), 10, 64)
		itemID, err2 := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err1 != nil || err2 != nil {
			middleware.Flash(c, "Order not found.")
			c.Redirect(http.StatusFound, "/orders")
			return
		}

		result, err := CancelOrderItem(db, userID, uint(orderID), uint(itemID))
		switch {
		case errors.Is(err, models.ErrOrderNotFound):
			middleware.Flash(c, "Order not found.")
			c.Redirect(http.StatusFound, "/orders")
			return
		case errors.Is(err, models.ErrOrderItemNotFound):
			middleware.Flash(c, "Order item not found.")
			c.Redirect(http.StatusFound, "/orders")
			return
		case err != nil:
			log.Error().Err(err).Str("user_id", userID).Uint64("order_id", orderID).Uint64("item_id", itemID).Msg("failed to cancel order item")
			c.String(http.StatusInternalServerError, "Failed to cancel order item")
			return
		}

		log.Info().
			Str("user_id", userID).
			Uint64("order_id", orderID).
			Uint64("item_id", itemID).
			Bool("order_removed", result.OrderRemoved).
			Msg("order item cancelled")

		if result.OrderRemoved {
			middleware.Flash(c, fmt.Sprintf("Order #%d is removed.", result.UserOrderNumber))
		} else {
			middleware.Flash(c, fmt.Sprintf("%s removed from Order #%d!", result.ProductName, result.UserOrderNumber))
		}
		c.Redirect(http.StatusFound, "/orders")
	}
}
