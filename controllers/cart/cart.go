package cartControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ensureCart returns the user's cart row, inserting it on first access. The
// insert is ON CONFLICT DO NOTHING, so two first-time requests both land on
// the same row instead of one of them tripping the unique index.
func ensureCart(db *gorm.DB, userID string) (*models.Cart, error) {
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&models.Cart{UserID: userID}).Error; err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateCart returns the user's cart with items and products preloaded,
// creating an empty cart on first access.
func GetOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	cart, err := ensureCart(db, userID)
	if err != nil {
		return nil, err
	}
	if err := db.Preload("Items.Product").First(cart, cart.CartID).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

type AddResult struct {
	Item    models.CartItem
	Product models.Product
}

// AddItem puts quantity units of a product into the user's cart. If the cart
// already holds the product the existing row's quantity is incremented; the
// increment happens in the upsert itself, so a double-submit cannot lose an
// update.
func AddItem(db *gorm.DB, userID string, productID uint, quantity int) (*AddResult, error) {
	if quantity <= 0 {
		return nil, models.ErrInvalidQuantity
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := ensureCart(tx, userID)
		if err != nil {
			return err
		}

		newItem := models.CartItem{
			CartID:    cart.CartID,
			ProductID: product.ID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", quantity),
			}),
		}).Create(&newItem).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ? AND product_id = ?", cart.CartID, product.ID).
			First(&item).Error
	})
	if err != nil {
		return nil, err
	}

	item.Product = product
	return &AddResult{Item: item, Product: product}, nil
}

type RemoveResult struct {
	ProductName string
}

// RemoveItem deletes a cart item after checking it belongs to the user's own
// cart. An item in someone else's cart is reported as not found.
func RemoveItem(db *gorm.DB, userID string, itemID uint) (*RemoveResult, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCartItemNotFound
		}
		return nil, err
	}

	var item models.CartItem
	if err := db.Preload("Product").
		Where("id = ? AND cart_id = ?", itemID, cart.CartID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCartItemNotFound
		}
		return nil, err
	}

	if err := db.Delete(&models.CartItem{}, item.ID).Error; err != nil {
		return nil, err
	}
	return &RemoveResult{ProductName: item.Product.Name}, nil
}

// CartTotal sums quantity x live product price across the given items.
func CartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	return total
}
