package userControllers

import (
	"errors"

	"github.com/google/uuid"
	"github.com/webshop-demo/shop-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register creates a local account with an attached empty cart.
func Register(db *gorm.DB, email, name, password string) (*models.User, error) {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, models.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID := uuid.NewString()
	user := models.User{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Cart:         models.Cart{UserID: userID},
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks email/password and returns the matching user.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}
	return &user, nil
}

func GetUser(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// UpdateProfile applies the given fields; nil fields are left alone.
func UpdateProfile(db *gorm.DB, userID string, input UpdateProfileInput) (*models.User, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil && *input.Email != user.Email {
		var existing models.User
		err := db.Where("email = ? AND id <> ?", *input.Email, userID).First(&existing).Error
		if err == nil {
			return nil, models.ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) > 0 {
		if err := db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}
