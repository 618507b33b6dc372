package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/webshop-demo/shop-api/middleware"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// GET /products
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")

		products, err := ListProducts(db, search, category)
		if err != nil {
			log.Error().Err(err).Msg("failed to list products")
			c.String(http.StatusInternalServerError, "Failed to load products")
			return
		}
		categories, err := ListCategories(db)
		if err != nil {
			log.Error().Err(err).Msg("failed to list categories")
			c.String(http.StatusInternalServerError, "Failed to load products")
			return
		}

		c.HTML(http.StatusOK, "product_list.html", gin.H{
			"Products":   products,
			"Categories": categories,
			"Search":     search,
			"Category":   category,
			"Flashes":    middleware.TakeFlashes(c),
			"LoggedIn":   middleware.SessionUserID(c) != "",
		})
	}
}

// GET /products/:id
func ProductDetailHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			middleware.Flash(c, "Product not found.")
			c.Redirect(http.StatusFound, "/products")
			return
		}

		product, err := GetProduct(db, uint(id))
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				middleware.Flash(c, "Product not found.")
				c.Redirect(http.StatusFound, "/products")
				return
			}
			log.Error().Err(err).Uint64("product_id", id).Msg("failed to load product")
			c.String(http.StatusInternalServerError, "Failed to load product")
			return
		}

		c.HTML(http.StatusOK, "product_detail.html", gin.H{
			"Product":  product,
			"Flashes":  middleware.TakeFlashes(c),
			"LoggedIn": middleware.SessionUserID(c) != "",
		})
	}
}

// GET /api/suggestions?q=
func SuggestionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		suggestions, err := SearchSuggestions(db, c.Query("q"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suggestions"})
			return
		}
		c.JSON(http.StatusOK, suggestions)
	}
}
