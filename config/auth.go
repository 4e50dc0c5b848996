// bschool-portal/config/auth.go
package config

import (
	"log/slog"
	"os"
)

// JwtKey - ключ подписи сессионных токенов администратора.
var JwtKey []byte

func LoadAuthConfig() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("Критическая ошибка: переменная окружения JWT_SECRET не установлена.")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
