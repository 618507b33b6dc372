package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires up the auth, web, and API route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupAuthRoutes(r, db)
	SetupWebRoutes(r, db)
	SetupAPIRoutes(r, db)
}
