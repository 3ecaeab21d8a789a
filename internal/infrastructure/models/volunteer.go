package models

import (
	"time"

	"github.com/google/uuid"
)

// Volunteer availability is stored as a JSON-encoded text column.
// Email carries a unique index so upserts can conflict on it.
type Volunteer struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(120);not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone           *string   `gorm:"type:varchar(40)"`
	Role            string    `gorm:"type:varchar(120);not null"`
	ExperienceLevel *string   `gorm:"type:varchar(40)"`
	Availability    string    `gorm:"type:text;not null;default:'[]'"`
	Motivation      string    `gorm:"type:text"`
	PhotoURL        *string   `gorm:"type:text"`
	LinkedInURL     *string   `gorm:"column:linkedin_url;type:text"`
	TwitterURL      *string   `gorm:"type:text"`
	GithubURL       *string   `gorm:"type:text"`
	SortOrder       int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
}
