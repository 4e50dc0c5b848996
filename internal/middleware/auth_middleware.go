package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"bschool-portal/config"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// CachedAdminData - данные администратора, которые кладутся в кэш между
// запросами. Сама валидность сессии проверяется на каждом запросе заново.
type CachedAdminData struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// AuthMiddleware gates every admin view behind a valid session token.
// Unauthenticated HTML clients are redirected to the login view; API
// clients receive 401. On success the admin identity is exposed in the
// request context for display.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := sessionAdminID(c)
		if !ok {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Invalid or expired session")
			return
		}

		cacheKey := fmt.Sprintf("admin:%s:data", adminID)
		if config.RDB != nil {
			cachedData, err := config.RDB.Get(config.Ctx, cacheKey).Result()
			if err == nil {
				var adminData CachedAdminData
				if json.Unmarshal([]byte(cachedData), &adminData) == nil {
					setContextAndProceed(c, &adminData)
					return
				}
				slog.Warn("Failed to unmarshal cached admin data", "admin_id", adminID)
			} else if err != redis.Nil {
				slog.Error("Redis GET command failed", "error", err, "admin_id", adminID)
			}
		}

		var admin models.Admin
		if err := config.DB.First(&admin, "id = ?", adminID).Error; err != nil {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Admin from token not found")
			return
		}

		adminData := CachedAdminData{
			AdminID: admin.ID,
			Email:   admin.Email,
			Name:    admin.Name,
		}

		if config.RDB != nil {
			jsonData, err := json.Marshal(adminData)
			if err != nil {
				slog.Error("Failed to marshal admin data for caching", "error", err, "admin_id", adminID)
			} else if err := config.RDB.Set(config.Ctx, cacheKey, jsonData, 10*time.Minute).Err(); err != nil {
				slog.Error("Failed to SET admin data to cache", "error", err, "admin_id", adminID)
			}
		}

		setContextAndProceed(c, &adminData)
	}
}

// RedirectIfAuthenticated - обратная проверка для страницы входа: если
// сессия уже есть, посетителя отправляют в админку.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessionAdminID(c); ok {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}

// sessionAdminID extracts and validates the session token from the cookie
// or the Authorization header and returns the admin id it carries.
func sessionAdminID(c *gin.Context) (string, bool) {
	tokenStr, err := c.Cookie("auth_token")
	if err != nil || tokenStr == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return "", false
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", false
		}
		tokenStr = parts[1]
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.JwtKey, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	adminID, ok := claims["admin_id"].(string)
	if !ok || adminID == "" {
		return "", false
	}
	return adminID, true
}

func setContextAndProceed(c *gin.Context, adminData *CachedAdminData) {
	c.Set("admin_id", adminData.AdminID)
	c.Set("admin_email", adminData.Email)
	c.Set("admin_name", adminData.Name)
	c.Next()
}

func handleAuthError(c *gin.Context, message string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/admin/login")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	}
	c.Abort()
}
