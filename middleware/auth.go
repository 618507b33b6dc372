package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionUserID returns the logged-in user's id from the cookie session, or
// "" for anonymous visitors.
func SessionUserID(c *gin.Context) string {
	sess := sessions.Default(c)
	userID, _ := sess.Get("user_id").(string)
	return userID
}

// RequireAuth guards the human-facing pages. Anonymous visitors are sent to
// the login page; otherwise the user id lands in the request context.
func RequireAuth(c *gin.Context) {
	userID := SessionUserID(c)
	if userID == "" {
		Flash(c, "Please log in to continue.")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Set("user_id", userID)
	c.Next()
}

// ValidateToken guards the REST API with a bearer JWT.
func ValidateToken(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set("user_id", claims["user_id"])
	c.Next()
}
