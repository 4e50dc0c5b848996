package routes

import (
	"bschool-portal/internal/handlers"
	"bschool-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes регистрирует публичные маршруты для аутентификации
// администратора. Страница входа сама защищена обратной проверкой: при
// живой сессии посетитель сразу уходит в админку.
func RegisterAuthRoutes(r *gin.Engine) {
	login := r.Group("/admin/login", middleware.RedirectIfAuthenticated())
	{
		login.GET("", handlers.LoginStatusHandler)
		login.POST("", handlers.LoginHandler)
	}

	// Выход из системы.
	r.GET("/admin/logout", handlers.LogoutHandler)
}
