package models

import (
	"time"

	"github.com/google/uuid"
)

// Speaker rows are deleted permanently; there is no soft-delete.
type Speaker struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Name              string    `gorm:"type:varchar(120);not null"`
	Title             string    `gorm:"type:varchar(160)"`
	Organization      string    `gorm:"type:varchar(160)"`
	TalkTitle         string    `gorm:"type:text;not null"`
	Abstract          string    `gorm:"type:text"`
	Track             string    `gorm:"type:varchar(80)"`
	Bio               string    `gorm:"type:text"`
	PhotoURL          string    `gorm:"type:text"`
	LinkedInURL       *string   `gorm:"column:linkedin_url;type:text"`
	TwitterURL        *string   `gorm:"type:text"`
	GithubURL         *string   `gorm:"type:text"`
	TalkLengthMinutes int       `gorm:"not null;default:30"`
	SortOrder         int       `gorm:"not null;default:0"`
	CreatedAt         time.Time
}
