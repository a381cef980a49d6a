package model

import (
	"time"

	"gorm.io/datatypes"
)

// Research represents a single catalogue entry in the marketplace.
// Rating is derived from Grade and is never set directly; OwnerID is
// assigned at creation and never reassigned.
type Research struct {
	ID            string                      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	OwnerID       string                      `gorm:"not null;index;type:varchar(64)" json:"owner_id"`
	Title         string                      `gorm:"not null;type:varchar(255)" json:"title"`
	Grade         string                      `gorm:"not null;type:varchar(10)" json:"grade"`
	Rating        int                         `gorm:"not null;default:1" json:"rating"`
	Price         float64                     `gorm:"not null;default:0" json:"price"`
	InstitutionID string                      `gorm:"index;type:varchar(64)" json:"institution_id,omitempty"`
	Degree        string                      `gorm:"type:varchar(100)" json:"degree,omitempty"`
	Course        string                      `gorm:"type:varchar(255)" json:"course,omitempty"`
	SubjectCode   string                      `gorm:"type:varchar(50)" json:"subject_code,omitempty"`
	YearSubmitted int                         `json:"year_submitted,omitempty"`
	YearPublished int                         `json:"year_published,omitempty"`
	Abstract      string                      `gorm:"type:text" json:"abstract,omitempty"`
	Keywords      datatypes.JSONSlice[string] `json:"keywords,omitempty"`
	Downloads     int                         `gorm:"not null;default:0" json:"downloads"`
	Earnings      float64                     `gorm:"not null;default:0" json:"earnings"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}
