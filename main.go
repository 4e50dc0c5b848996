// bschool-portal/main.go
package main

import (
	"log/slog"
	"os"

	"bschool-portal/config"
	"bschool-portal/internal/handlers"
	"bschool-portal/internal/routes"
	"bschool-portal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadAuthConfig()
	config.ConnectDB()
	config.ConnectRedis()

	if err := config.DB.AutoMigrate(
		&models.School{},
		&models.Program{},
		&models.Cutoff{},
		&models.Deadline{},
		&models.NewsletterSubscriber{},
		&models.ContactSubmission{},
		&models.Admin{},
	); err != nil {
		slog.Error("Ошибка миграции БД", "error", err)
		os.Exit(1)
	}

	seedAdmin()

	// Хаб событий дашборда живёт всё время работы приложения.
	go handlers.EventsHub.Run()

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("Сервер запущен", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Ошибка запуска сервера", "error", err)
		os.Exit(1)
	}
}

// seedAdmin создаёт стартовую учётную запись администратора из переменных
// окружения, если её ещё нет. Без них приложение стартует без админки.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		slog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD не заданы, стартовый администратор не создаётся")
		return
	}

	var count int64
	config.DB.Model(&models.Admin{}).Where("lower(email) = lower(?)", email).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Не удалось захэшировать пароль администратора", "error", err)
		return
	}

	admin := models.Admin{
		Email:    email,
		Name:     os.Getenv("ADMIN_NAME"),
		Password: string(hashed),
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		slog.Error("Не удалось создать администратора", "error", err)
		return
	}
	slog.Info("Создан стартовый администратор", "email", email)
}
