package apiControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// GET /api/orders
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		query := db.Preload("Items").Preload("Items.Product").Order("created_at")
		if userID := c.Query("user_id"); userID != "" {
			query = query.Where("user_id = ?", userID)
		}
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.Preload("Items").Preload("Items.Product").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type OrderItemInput struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// POST /api/orders creates an order row directly; schema constraints only,
// the business flow lives in the order controller.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID          string           `json:"user_id" binding:"required"`
			UserOrderNumber int              `json:"user_order_number" binding:"required"`
			TotalAmount     decimal.Decimal  `json:"total_amount"`
			Items           []OrderItemInput `json:"items"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order := models.Order{
			UserID:          input.UserID,
			UserOrderNumber: input.UserOrderNumber,
			TotalAmount:     input.TotalAmount,
		}
		for _, item := range input.Items {
			order.Items = append(order.Items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		if err := db.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// PUT /api/orders/:id
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		var input struct {
			TotalAmount *decimal.Decimal `json:"total_amount"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.TotalAmount != nil {
			if err := db.Model(&order).Update("total_amount", *input.TotalAmount).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/orders/:id
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
