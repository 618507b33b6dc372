package userControllers_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	userControllers "github.com/webshop-demo/shop-api/controllers/user"
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

func TestRegisterCreatesUserWithCart(t *testing.T) {
	db := setupTestDB(t)

	user, err := userControllers.Register(db, "new@example.com", "New User", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&cart).Error)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := userControllers.Register(db, "dup@example.com", "First", "pw")
	require.NoError(t, err)
	_, err = userControllers.Register(db, "dup@example.com", "Second", "pw")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)

	registered, err := userControllers.Register(db, "auth@example.com", "Auth", "correct-horse")
	require.NoError(t, err)

	user, err := userControllers.Authenticate(db, "auth@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = userControllers.Authenticate(db, "auth@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = userControllers.Authenticate(db, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)

	user, err := userControllers.Register(db, "edit@example.com", "Before", "pw")
	require.NoError(t, err)
	_, err = userControllers.Register(db, "taken@example.com", "Other", "pw")
	require.NoError(t, err)

	name := "After"
	_, err = userControllers.UpdateProfile(db, user.ID, userControllers.UpdateProfileInput{Name: &name})
	require.NoError(t, err)

	stored, err := userControllers.GetUser(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", stored.Name)

	taken := "taken@example.com"
	_, err = userControllers.UpdateProfile(db, user.ID, userControllers.UpdateProfileInput{Email: &taken})
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	newPassword := "new-pw"
	_, err = userControllers.UpdateProfile(db, user.ID, userControllers.UpdateProfileInput{Password: &newPassword})
	require.NoError(t, err)
	_, err = userControllers.Authenticate(db, "edit@example.com", "new-pw")
	assert.NoError(t, err)
}
