package routes

import (
	"bschool-portal/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes регистрирует публичные маршруты каталога.
// Эти маршруты не требуют аутентификации.
func RegisterPublicRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// --- КАТАЛОГ ШКОЛ ---
		api.GET("/bschools", handlers.ListSchoolsHandler)
		api.GET("/bschools/:id", handlers.GetSchoolHandler)

		// --- СРАВНЕНИЕ ---
		api.GET("/compare", handlers.CompareSchoolsHandler)
		api.GET("/compare/export", handlers.ExportComparisonHandler)

		// --- ДЕДЛАЙНЫ ---
		api.GET("/deadlines", handlers.ListDeadlinesHandler)

		// --- ФОРМЫ ---
		api.POST("/contact", handlers.SubmitContactHandler)
		api.POST("/newsletter", handlers.SubscribeNewsletterHandler)
	}
}
