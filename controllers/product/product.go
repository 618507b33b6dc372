package productcontroller

import (
	"errors"
	"strings"

	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// ListProducts applies an optional case-insensitive substring match on name or
// description and an optional exact category match. Both filters compose with
// AND; with neither given every product is returned in storage order.
func ListProducts(db *gorm.DB, search, category string) ([]models.Product, error) {
	query := db.Model(&models.Product{})

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategories returns the distinct category values in use.
func ListCategories(db *gorm.DB) ([]string, error) {
	var categories []string
	if err := db.Model(&models.Product{}).Distinct().Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetProduct looks up a product and bumps its view counter in the same call.
// The increment runs as a single UPDATE expression, so two concurrent views
// both land.
func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	res := db.Model(&models.Product{}).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.ErrProductNotFound
	}

	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

const maxSuggestions = 5

type Suggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// SearchSuggestions returns up to five {id, name} pairs whose name contains
// the query, case-insensitively. An empty query yields an empty list, never
// the whole catalog.
func SearchSuggestions(db *gorm.DB, q string) ([]Suggestion, error) {
	suggestions := []Suggestion{}
	if q == "" {
		return suggestions, nil
	}

	like := "%" + strings.ToLower(q) + "%"
	if err := db.Model(&models.Product{}).
		Where("LOWER(name) LIKE ?", like).
		Limit(maxSuggestions).
		Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}
