package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Volunteer represents an event volunteer. Email is the natural key
// used for signup deduplication.
type Volunteer struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Phone           null.String `json:"phone,omitempty"`
	Role            string      `json:"role"`
	ExperienceLevel null.String `json:"experienceLevel,omitempty"`
	Availability    []string    `json:"availability"`
	Motivation      string      `json:"motivation"`
	PhotoURL        null.String `json:"photoUrl,omitempty"`
	LinkedInURL     null.String `json:"linkedinUrl,omitempty"`
	TwitterURL      null.String `json:"twitterUrl,omitempty"`
	GithubURL       null.String `json:"githubUrl,omitempty"`
	SortOrder       int         `json:"sortOrder"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// VolunteerSignupInput represents the public sign-up form payload
type VolunteerSignupInput struct {
	Name            string   `json:"name" binding:"required,min=2,max=120"`
	Email           string   `json:"email" binding:"required,email"`
	Phone           string   `json:"phone"`
	Role            string   `json:"role" binding:"required"`
	ExperienceLevel string   `json:"experienceLevel"`
	Availability    []string `json:"availability"`
	Motivation      string   `json:"motivation" binding:"required"`
	PhotoURL        string   `json:"photoUrl"`
	LinkedInURL     string   `json:"linkedinUrl"`
	TwitterURL      string   `json:"twitterUrl"`
	GithubURL       string   `json:"githubUrl"`
}

// VolunteerPatch lists the volunteer fields a full admin edit may change.
type VolunteerPatch struct {
	Name            *string   `json:"name"`
	Phone           *string   `json:"phone"`
	Role            *string   `json:"role"`
	ExperienceLevel *string   `json:"experienceLevel"`
	Availability    *[]string `json:"availability"`
	Motivation      *string   `json:"motivation"`
	PhotoURL        *string   `json:"photoUrl"`
	LinkedInURL     *string   `json:"linkedinUrl"`
	TwitterURL      *string   `json:"twitterUrl"`
	GithubURL       *string   `json:"githubUrl"`
	SortOrder       *int      `json:"sortOrder"`
}

// Updates returns the column assignments for the set fields.
// Availability is stored as a JSON-encoded text column; the repository
// handles the encoding, so it is passed through here as-is.
func (p VolunteerPatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", p.Name)
	setString(updates, "phone", p.Phone)
	setString(updates, "role", p.Role)
	setString(updates, "experience_level", p.ExperienceLevel)
	setString(updates, "motivation", p.Motivation)
	setString(updates, "photo_url", p.PhotoURL)
	setString(updates, "linkedin_url", p.LinkedInURL)
	setString(updates, "twitter_url", p.TwitterURL)
	setString(updates, "github_url", p.GithubURL)
	setInt(updates, "sort_order", p.SortOrder)
	if p.Availability != nil {
		updates["availability"] = *p.Availability
	}
	return updates
}

// VolunteerProfilePatch is the restricted patch used by the profile
// admin path: only name, photo and LinkedIn may change there.
type VolunteerProfilePatch struct {
	Name        *string `json:"name"`
	PhotoURL    *string `json:"photoUrl"`
	LinkedInURL *string `json:"linkedinUrl"`
}

// Updates returns the column assignments for the set fields.
func (p VolunteerProfilePatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", p.Name)
	setString(updates, "photo_url", p.PhotoURL)
	setString(updates, "linkedin_url", p.LinkedInURL)
	return updates
}
