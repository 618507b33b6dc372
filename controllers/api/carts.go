package apiControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// GET /api/carts
func ListCarts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var carts []models.Cart
		if err := db.Preload("Items.Product").Find(&carts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch carts"})
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// GET /api/carts/:id
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart models.Cart
		if err := db.Preload("Items.Product").First(&cart, "cart_id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
			}
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /api/carts
func CreateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID string `json:"user_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart := models.Cart{UserID: input.UserID}
		if err := db.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /api/carts/:id
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cart models.Cart
		if err := db.First(&cart, "cart_id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
			}
			return
		}

		var input struct {
			UserID *string `json:"user_id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.UserID != nil {
			if err := db.Model(&cart).Update("user_id", *input.UserID).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
				return
			}
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/carts/:id
func DeleteCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.Param("id")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Where("cart_id = ?", cartID).Delete(&models.Cart{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart deleted"})
	}
}
