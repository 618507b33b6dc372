package orderControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// PlaceOrder drains the user's cart into a new order. The whole sequence runs
// in one transaction: the cart row is written first so concurrent placements
// for the same user queue on its row lock before the next order number is
// read, and the composite unique index on (user_id, user_order_number) rejects
// a duplicate number no matter what. Every cart item becomes an order item
// with the product's current price captured as a permanent snapshot, then the
// cart is emptied. The cart row itself survives for reuse.
func PlaceOrder(db *gorm.DB, userID string) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrEmptyCart
			}
			return err
		}

		// Serialize on the cart row before reading anything else.
		if err := tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("updated_at", time.Now()).Error; err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Preload("Product").Where("cart_id = ?", cart.CartID).
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return models.ErrEmptyCart
		}

		var maxNumber int
		if err := tx.Model(&models.Order{}).Where("user_id = ?", userID).
			Select("COALESCE(MAX(user_order_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			total = total.Add(item.TotalPrice())
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price,
			})
		}

		order = models.Order{
			UserID:          userID,
			UserOrderNumber: maxNumber + 1,
			TotalAmount:     total,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items.Product").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the user's orders with items and products eagerly
// loaded, oldest number first.
func ListOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("user_order_number").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

type CancelResult struct {
	OrderRemoved    bool
	ProductName     string
	UserOrderNumber int
}

// CancelOrderItem removes one item from one of the user's orders. If other
// items remain the order total is recomputed from their snapshot prices; if
// none remain the order itself is deleted. The order row is locked first so
// two cancellations of the last two items cannot both see leftovers and leave
// an empty order behind.
func CancelOrderItem(db *gorm.DB, userID string, orderID, itemID uint) (*CancelResult, error) {
	result := &CancelResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrOrderNotFound
			}
			return err
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("updated_at", time.Now()).Error; err != nil {
			return err
		}

		var item models.OrderItem
		if err := tx.Preload("Product").
			Where("id = ? AND order_id = ?", itemID, order.ID).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrOrderItemNotFound
			}
			return err
		}

		if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
			return err
		}

		result.ProductName = item.Product.Name
		result.UserOrderNumber = order.UserOrderNumber

		var remaining []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&remaining).Error; err != nil {
			return err
		}
		if len(remaining) == 0 {
			result.OrderRemoved = true
			return tx.Delete(&models.Order{}, order.ID).Error
		}

		total := decimal.Zero
		for _, rem := range remaining {
			total = total.Add(rem.TotalPrice())
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
