package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"not null"`
	Subject       string    `json:"subject" gorm:"not null"`
	Message       string    `json:"message" gorm:"not null"`
	IsRead        bool      `json:"is_read" gorm:"default:false"`
	AdminResponse string    `json:"admin_response"`
	CreatedAt     time.Time `json:"created_at"`
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
