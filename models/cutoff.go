package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cutoff holds the qualifying score per admission category for one exam/year.
type Cutoff struct {
	ID        string `json:"id" gorm:"type:uuid;primaryKey"`
	BSchoolID string `json:"bschool_id" gorm:"type:uuid;index;not null"`
	ExamName  string `json:"exam_name" gorm:"not null"`
	Year      int    `json:"year" gorm:"not null"`

	General float64 `json:"general"`
	OBC     float64 `json:"obc"`
	SC      float64 `json:"sc"`
	ST      float64 `json:"st"`
	EWS     float64 `json:"ews"`
	PWD     float64 `json:"pwd"`

	CreatedAt time.Time `json:"created_at"`

	School *School `json:"school,omitempty" gorm:"foreignKey:BSchoolID"`
}

func (c *Cutoff) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
