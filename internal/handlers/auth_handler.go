package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bschool-portal/config"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionLifetime = 24 * time.Hour

// LoginInput defines the credentials expected by the login form.
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler verifies the credentials and issues the session cookie.
// Failures are answered with a message the login form shows inline.
func LoginHandler(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	var admin models.Admin
	if err := config.DB.First(&admin, "lower(email) = lower(?)", input.Email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"exp":      time.Now().Add(sessionLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JwtKey)
	if err != nil {
		slog.Error("Failed to sign session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.SetCookie("auth_token", token, int(sessionLifetime.Seconds()), "/", "", false, true)
	slog.Info("Admin logged in", "admin_id", admin.ID, "email", admin.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
	})
}

// LogoutHandler invalidates the session cookie and sends the visitor back
// to the login view.
func LogoutHandler(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// MeHandler returns the identity of the authenticated admin, as placed in
// the context by the auth middleware.
func MeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":    c.GetString("admin_id"),
		"email": c.GetString("admin_email"),
		"name":  c.GetString("admin_name"),
	})
}

// LoginStatusHandler answers the login view itself. Authenticated visitors
// never reach it: RedirectIfAuthenticated sends them to /admin first.
func LoginStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Authentication required"})
}
