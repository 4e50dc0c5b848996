package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Допустимые значения поля Type у дедлайна.
const (
	DeadlineTypeApplication = "Application"
	DeadlineTypeExam        = "Exam"
	DeadlineTypeInterview   = "Interview"
	DeadlineTypeResult      = "Result"
)

// Deadline represents an admission-related date published by a school.
// Only records with IsActive=true are ever shown to visitors.
type Deadline struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	BSchoolID    string    `json:"bschool_id" gorm:"type:uuid;index;not null"`
	Title        string    `json:"title" gorm:"not null"`
	DeadlineDate time.Time `json:"deadline_date" gorm:"not null"`
	Description  string    `json:"description"`
	Type         string    `json:"type" gorm:"default:Application"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`

	School *School `json:"school,omitempty" gorm:"foreignKey:BSchoolID"`
}

func (Deadline) TableName() string {
	return "application_deadlines"
}

func (d *Deadline) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
