package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/webshop-demo/shop-api/auth"
	"github.com/webshop-demo/shop-api/middleware"
	"github.com/webshop-demo/shop-api/models"
	"gorm.io/gorm"
)

// GET /register
func RegisterPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Flashes": middleware.TakeFlashes(c),
		})
	}
}

// POST /register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		name := c.PostForm("name")
		password := c.PostForm("password")

		if email == "" || password == "" {
			middleware.Flash(c, "Email and password are required.")
			c.Redirect(http.StatusFound, "/register")
			return
		}

		user, err := Register(db, email, name, password)
		if errors.Is(err, models.ErrEmailTaken) {
			middleware.Flash(c, "That email is already registered.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("email", email).Msg("failed to register user")
			c.String(http.StatusInternalServerError, "Registration failed")
			return
		}

		sess := sessions.Default(c)
		sess.Set("user_id", user.ID)
		if err := sess.Save(); err != nil {
			c.String(http.StatusInternalServerError, "Registration failed")
			return
		}

		log.Info().Str("user_id", user.ID).Msg("user registered")
		middleware.Flash(c, "Registration successful!")
		c.Redirect(http.StatusFound, "/products")
	}
}

// GET /login
func LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Flashes": middleware.TakeFlashes(c),
		})
	}
}

// POST /login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := Authenticate(db, c.PostForm("email"), c.PostForm("password"))
		if errors.Is(err, models.ErrInvalidCredentials) {
			middleware.Flash(c, "Invalid email or password.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("login failed")
			c.String(http.StatusInternalServerError, "Login failed")
			return
		}

		sess := sessions.Default(c)
		sess.Set("user_id", user.ID)
		if err := sess.Save(); err != nil {
			c.String(http.StatusInternalServerError, "Login failed")
			return
		}
		c.Redirect(http.StatusFound, "/products")
	}
}

// POST /logout
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Clear()
		sess.Save()
		c.Redirect(http.StatusFound, "/products")
	}
}

// GET /profile
func ProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUser(db, c.GetString("user_id"))
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"User":     user,
			"Flashes":  middleware.TakeFlashes(c),
			"LoggedIn": true,
		})
	}
}

// GET /profile/edit
func EditProfilePageHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUser(db, c.GetString("user_id"))
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusOK, "edit_profile.html", gin.H{
			"User":     user,
			"Flashes":  middleware.TakeFlashes(c),
			"LoggedIn": true,
		})
	}
}

// POST /profile/edit
func EditProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		input := UpdateProfileInput{}
		if name, ok := c.GetPostForm("name"); ok {
			input.Name = &name
		}
		if email, ok := c.GetPostForm("email"); ok && email != "" {
			input.Email = &email
		}
		if password, ok := c.GetPostForm("password"); ok && password != "" {
			input.Password = &password
		}

		if _, err := UpdateProfile(db, userID, input); err != nil {
			if errors.Is(err, models.ErrEmailTaken) {
				middleware.Flash(c, "That email is already registered.")
			} else {
				log.Error().Err(err).Str("user_id", userID).Msg("failed to update profile")
				middleware.Flash(c, "Please correct the errors below.")
			}
			c.Redirect(http.StatusFound, "/profile/edit")
			return
		}

		middleware.Flash(c, "Profile updated successfully!")
		c.Redirect(http.StatusFound, "/profile")
	}
}

// POST /auth/token exchanges credentials for a JWT used by the REST API.
func TokenHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := Authenticate(db, req.Email, req.Password)
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}

		token, err := auth.IssueToken(user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
