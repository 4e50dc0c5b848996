// bschool-portal/internal/routes/api_routes.go
package routes

import (
	"bschool-portal/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAdminAPIRoutes регистрирует маршруты админки, требующие
// аутентификации.
func RegisterAdminAPIRoutes(api *gin.RouterGroup) {
	// Личность текущего администратора
	api.GET("/admin", handlers.MeHandler)

	apiGroup := api.Group("/api/admin")
	{
		// --- ДАШБОРД ---
		apiGroup.GET("/dashboard", handlers.DashboardHandler)

		// WebSocket с событиями для дашборда
		apiGroup.GET("/events/ws", func(c *gin.Context) {
			handlers.EventsWSEndpoint(c)
		})

		// --- ШКОЛЫ ---
		schools := apiGroup.Group("/bschools")
		{
			schools.POST("", handlers.CreateSchoolHandler)
			schools.PUT("/:id", handlers.UpdateSchoolHandler)
			schools.DELETE("/:id", handlers.DeleteSchoolHandler)
		}

		// --- ПРОГРАММЫ ---
		programs := apiGroup.Group("/programs")
		{
			programs.GET("", handlers.ListProgramsHandler)
			programs.POST("", handlers.CreateProgramHandler)
			programs.PUT("/:id", handlers.UpdateProgramHandler)
			programs.DELETE("/:id", handlers.DeleteProgramHandler)
		}

		// --- ПРОХОДНЫЕ БАЛЛЫ ---
		cutoffs := apiGroup.Group("/cutoffs")
		{
			cutoffs.GET("", handlers.ListCutoffsHandler)
			cutoffs.POST("", handlers.CreateCutoffHandler)
			cutoffs.PUT("/:id", handlers.UpdateCutoffHandler)
			cutoffs.DELETE("/:id", handlers.DeleteCutoffHandler)
		}

		// --- ДЕДЛАЙНЫ ---
		deadlines := apiGroup.Group("/deadlines")
		{
			deadlines.GET("", handlers.ListAllDeadlinesHandler)
			deadlines.POST("", handlers.CreateDeadlineHandler)
			deadlines.PUT("/:id", handlers.UpdateDeadlineHandler)
			deadlines.DELETE("/:id", handlers.DeleteDeadlineHandler)
		}

		// --- ОБРАЩЕНИЯ ---
		contacts := apiGroup.Group("/contacts")
		{
			contacts.GET("", handlers.ListContactSubmissionsHandler)
			contacts.PUT("/:id/read", handlers.MarkContactReadHandler)
			contacts.PUT("/:id/response", handlers.RespondContactHandler)
		}

		// --- ПОДПИСЧИКИ ---
		subscribers := apiGroup.Group("/subscribers")
		{
			subscribers.GET("", handlers.ListSubscribersHandler)
			subscribers.PUT("/:id/deactivate", handlers.DeactivateSubscriberHandler)
		}
	}
}
