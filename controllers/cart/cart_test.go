package cartControllers_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cartControllers "github.com/webshop-demo/shop-api/controllers/cart"
	"github.com/webshop-demo/shop-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	user := models.User{ID: uuid.NewString(), Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) models.Product {
	product := models.Product{Name: name, Price: decimal.RequireFromString(price), Category: "misc"}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestGetOrCreateCartIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "cart@example.com")

	first, err := cartControllers.GetOrCreateCart(db, user.ID)
	require.NoError(t, err)
	second, err := cartControllers.GetOrCreateCart(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.CartID, second.CartID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemMergesQuantities(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "merge@example.com")
	product := seedProduct(t, db, "Notebook", "10.00")

	_, err := cartControllers.AddItem(db, user.ID, product.ID, 2)
	require.NoError(t, err)
	result, err := cartControllers.AddItem(db, user.ID, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Item.Quantity)
	assert.True(t, result.Item.TotalPrice().Equal(decimal.RequireFromString("50.00")),
		"total_price = %s", result.Item.TotalPrice())

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "adding an existing product must not duplicate the row")
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "zero@example.com")
	product := seedProduct(t, db, "Pen", "1.50")

	_, err := cartControllers.AddItem(db, user.ID, product.ID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
	_, err = cartControllers.AddItem(db, user.ID, product.ID, -2)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "a rejected add must not mutate the cart")
}

func TestConcurrentFirstAddsShareOneCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "firstadd@example.com")
	product := seedProduct(t, db, "Hot Item", "3.00")

	const workers = 4
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cartControllers.AddItem(db, user.ID, product.ID, 1); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent first add failed: %v", err)
	}

	var cartCount int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.EqualValues(t, 1, cartCount, "first-time adds must converge on one cart")

	var item models.CartItem
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&item).Error)
	assert.Equal(t, workers, item.Quantity, "every concurrent increment must land")
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "missing@example.com")

	_, err := cartControllers.AddItem(db, user.ID, 12345, 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestRemoveItem(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "remove@example.com")
	product := seedProduct(t, db, "Stapler", "7.25")

	added, err := cartControllers.AddItem(db, user.ID, product.ID, 1)
	require.NoError(t, err)

	result, err := cartControllers.RemoveItem(db, user.ID, added.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stapler", result.ProductName)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRemoveItemCrossUserIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")
	product := seedProduct(t, db, "Monitor", "199.00")

	added, err := cartControllers.AddItem(db, owner.ID, product.ID, 1)
	require.NoError(t, err)

	// Intruder without a cart.
	_, err = cartControllers.RemoveItem(db, intruder.ID, added.Item.ID)
	assert.ErrorIs(t, err, models.ErrCartItemNotFound)

	// Intruder with an empty cart of their own.
	_, err = cartControllers.GetOrCreateCart(db, intruder.ID)
	require.NoError(t, err)
	_, err = cartControllers.RemoveItem(db, intruder.ID, added.Item.ID)
	assert.ErrorIs(t, err, models.ErrCartItemNotFound)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the owner's item must survive a cross-user removal attempt")
}

func TestCartTotal(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "total@example.com")
	a := seedProduct(t, db, "A", "5.00")
	b := seedProduct(t, db, "B", "3.00")

	assert.True(t, cartControllers.CartTotal(nil).IsZero())

	_, err := cartControllers.AddItem(db, user.ID, a.ID, 2)
	require.NoError(t, err)
	_, err = cartControllers.AddItem(db, user.ID, b.ID, 1)
	require.NoError(t, err)

	cart, err := cartControllers.GetOrCreateCart(db, user.ID)
	require.NoError(t, err)
	assert.True(t, cartControllers.CartTotal(cart.Items).Equal(decimal.RequireFromString("13.00")))
}
