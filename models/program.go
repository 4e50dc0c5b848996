package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Program описывает учебную программу, привязанную к конкретной школе.
type Program struct {
	ID              string     `json:"id" gorm:"type:uuid;primaryKey"`
	BSchoolID       string     `json:"bschool_id" gorm:"type:uuid;index;not null"`
	Name            string     `json:"name" gorm:"not null"`
	Duration        string     `json:"duration"`
	Fees            int64      `json:"fees"`
	Seats           int        `json:"seats"`
	Specializations StringList `json:"specializations" gorm:"type:jsonb"`
	CreatedAt       time.Time  `json:"created_at"`

	School *School `json:"school,omitempty" gorm:"foreignKey:BSchoolID"`
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
