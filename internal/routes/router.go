package routes

import (
	"bschool-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	// --- Публичные маршруты ---
	// Каталог, сравнение, дедлайны и формы доступны без аутентификации.
	RegisterPublicRoutes(r)
	RegisterAuthRoutes(r)

	// --- Защищённая группа маршрутов ---
	// Всё, что под /admin (кроме страницы входа), требует живой сессии.
	// Middleware `AuthMiddleware` проверяет токен на каждом запросе.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAdminAPIRoutes(authRequired)
	}
}
