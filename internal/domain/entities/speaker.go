package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Speaker represents a conference speaker
type Speaker struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Title             string      `json:"title"`
	Organization      string      `json:"organization"`
	TalkTitle         string      `json:"talkTitle"`
	Abstract          string      `json:"abstract"`
	Track             string      `json:"track"`
	Bio               string      `json:"bio"`
	PhotoURL          string      `json:"photoUrl"`
	LinkedInURL       null.String `json:"linkedinUrl,omitempty"`
	TwitterURL        null.String `json:"twitterUrl,omitempty"`
	GithubURL         null.String `json:"githubUrl,omitempty"`
	TalkLengthMinutes int         `json:"talkLengthMinutes"`
	SortOrder         int         `json:"sortOrder"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// CreateSpeakerInput represents input for creating a speaker
type CreateSpeakerInput struct {
	Name              string `json:"name" binding:"required,min=2,max=120"`
	Title             string `json:"title"`
	Organization      string `json:"organization"`
	TalkTitle         string `json:"talkTitle" binding:"required"`
	Abstract          string `json:"abstract"`
	Track             string `json:"track"`
	Bio               string `json:"bio"`
	PhotoURL          string `json:"photoUrl"`
	LinkedInURL       string `json:"linkedinUrl"`
	TwitterURL        string `json:"twitterUrl"`
	GithubURL         string `json:"githubUrl"`
	TalkLengthMinutes int    `json:"talkLengthMinutes"`
	SortOrder         int    `json:"sortOrder"`
}

// SpeakerPatch lists the speaker fields an admin edit is allowed to
// change. Nil fields are left untouched.
type SpeakerPatch struct {
	Name              *string `json:"name"`
	Title             *string `json:"title"`
	Organization      *string `json:"organization"`
	TalkTitle         *string `json:"talkTitle"`
	Abstract          *string `json:"abstract"`
	Track             *string `json:"track"`
	Bio               *string `json:"bio"`
	PhotoURL          *string `json:"photoUrl"`
	LinkedInURL       *string `json:"linkedinUrl"`
	TwitterURL        *string `json:"twitterUrl"`
	GithubURL         *string `json:"githubUrl"`
	TalkLengthMinutes *int    `json:"talkLengthMinutes"`
	SortOrder         *int    `json:"sortOrder"`
}

// Updates returns the column assignments for the set fields.
func (p SpeakerPatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "name", p.Name)
	setString(updates, "title", p.Title)
	setString(updates, "organization", p.Organization)
	setString(updates, "talk_title", p.TalkTitle)
	setString(updates, "abstract", p.Abstract)
	setString(updates, "track", p.Track)
	setString(updates, "bio", p.Bio)
	setString(updates, "photo_url", p.PhotoURL)
	setString(updates, "linkedin_url", p.LinkedInURL)
	setString(updates, "twitter_url", p.TwitterURL)
	setString(updates, "github_url", p.GithubURL)
	setInt(updates, "talk_length_minutes", p.TalkLengthMinutes)
	setInt(updates, "sort_order", p.SortOrder)
	return updates
}

func setString(updates map[string]interface{}, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

func setInt(updates map[string]interface{}, column string, v *int) {
	if v != nil {
		updates[column] = *v
	}
}
