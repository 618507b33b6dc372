package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/webshop-demo/shop-api/controllers/user"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers registration, login, and token endpoints. No
// middleware — these are the ways in.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/register", userControllers.RegisterPageHandler())
	r.POST("/register", userControllers.RegisterHandler(db))
	r.GET("/login", userControllers.LoginPageHandler())
	r.POST("/login", userControllers.LoginHandler(db))
	r.POST("/logout", userControllers.LogoutHandler())

	r.POST("/auth/token", userControllers.TokenHandler(db))
}
