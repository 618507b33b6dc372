package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a short-lived HS256 token carrying the user id for the
// REST surface.
func IssueToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
