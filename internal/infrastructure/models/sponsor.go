package models

import (
	"time"

	"github.com/google/uuid"
)

type Sponsor struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	CompanyName  string    `gorm:"type:varchar(160);not null"`
	Tier         string    `gorm:"type:varchar(20);not null"`
	LogoURL      string    `gorm:"type:text"`
	WebsiteURL   *string   `gorm:"type:text"`
	Description  string    `gorm:"type:text"`
	ContactEmail *string   `gorm:"type:varchar(255)"`
	Benefits     string    `gorm:"type:text;not null;default:'[]'"`
	SortOrder    int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
}
