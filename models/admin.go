package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin определяет учётную запись администратора панели управления.
// Пароль хранится только в виде bcrypt-хэша и никогда не сериализуется.
type Admin struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Name      string    `json:"name"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
