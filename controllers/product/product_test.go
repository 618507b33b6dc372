package productcontroller_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	productcontroller "github.com/webshop-demo/shop-api/controllers/product"
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

func seedProduct(t *testing.T, db *gorm.DB, name, description, category, price string) models.Product {
	product := models.Product{
		Name:        name,
		Description: description,
		Category:    category,
		Price:       decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestGetProductIncrementsViewCount(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Keyboard", "mechanical", "electronics", "49.90")

	first, err := productcontroller.GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ViewCount)

	second, err := productcontroller.GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ViewCount)

	var stored models.Product
	require.NoError(t, db.First(&stored, product.ID).Error)
	assert.Equal(t, 2, stored.ViewCount)
}

func TestGetProductNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := productcontroller.GetProduct(db, 999)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestListProductsFilters(t *testing.T) {
	db := setupTestDB(t)
	seedProduct(t, db, "Coffee Mug", "ceramic mug for hot drinks", "kitchen", "8.50")
	seedProduct(t, db, "Espresso Machine", "makes coffee", "kitchen", "230.00")
	seedProduct(t, db, "Desk Lamp", "LED lamp", "office", "25.00")

	t.Run("no filters returns all", func(t *testing.T) {
		products, err := productcontroller.ListProducts(db, "", "")
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("search matches name or description case-insensitively", func(t *testing.T) {
		products, err := productcontroller.ListProducts(db, "COFFEE", "")
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("category is an exact match", func(t *testing.T) {
		products, err := productcontroller.ListProducts(db, "", "office")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Desk Lamp", products[0].Name)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		products, err := productcontroller.ListProducts(db, "coffee", "kitchen")
		require.NoError(t, err)
		assert.Len(t, products, 2)

		products, err = productcontroller.ListProducts(db, "coffee", "office")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestSearchSuggestions(t *testing.T) {
	db := setupTestDB(t)
	for i := 0; i < 7; i++ {
		seedProduct(t, db, fmt.Sprintf("Widget %d", i), "", "misc", "1.00")
	}
	seedProduct(t, db, "Gadget", "", "misc", "2.00")

	t.Run("empty query yields no suggestions", func(t *testing.T) {
		suggestions, err := productcontroller.SearchSuggestions(db, "")
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("capped at five results", func(t *testing.T) {
		suggestions, err := productcontroller.SearchSuggestions(db, "widget")
		require.NoError(t, err)
		assert.Len(t, suggestions, 5)
	})

	t.Run("matches name substring case-insensitively", func(t *testing.T) {
		suggestions, err := productcontroller.SearchSuggestions(db, "GADG")
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "Gadget", suggestions[0].Name)
	})
}
