// bschool-portal/models/school.go

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// School represents a business school record in the database.
type School struct {
	ID        string `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	ShortName string `json:"short_name"`
	LogoURL   string `json:"logo_url"`

	// --- LOCATION ---
	Location string `json:"location"`
	City     string `json:"city"`
	State    string `json:"state"`

	// Type: Government, Private или Autonomous
	Type        string `json:"type"`
	Website     string `json:"website"`
	Description string `json:"description"`

	// --- FINANCIALS & PLACEMENTS ---
	FeesMin        int64   `json:"fees_min"`
	FeesMax        int64   `json:"fees_max"`
	AvgPackage     int64   `json:"avg_package"`
	HighestPackage int64   `json:"highest_package"`
	PlacementRate  float64 `json:"placement_rate"`

	NIRFRanking     int        `json:"nirf_ranking"`
	AcceptedExams   StringList `json:"accepted_exams" gorm:"type:jsonb"`
	TotalSeats      int        `json:"total_seats"`
	EstablishedYear int        `json:"established_year"`
	Accreditation   StringList `json:"accreditation" gorm:"type:jsonb"`
	Facilities      StringList `json:"facilities" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (School) TableName() string {
	return "bschools"
}

func (s *School) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
