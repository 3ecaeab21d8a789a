package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SponsorTier represents sponsorship levels
type SponsorTier string

const (
	SponsorTierPlatinum SponsorTier = "Platinum"
	SponsorTierGold     SponsorTier = "Gold"
	SponsorTierSilver   SponsorTier = "Silver"
	SponsorTierBronze   SponsorTier = "Bronze"
)

// Sponsor represents an event sponsor
type Sponsor struct {
	ID           uuid.UUID   `json:"id"`
	CompanyName  string      `json:"companyName"`
	Tier         SponsorTier `json:"tier"`
	LogoURL      string      `json:"logoUrl"`
	WebsiteURL   null.String `json:"websiteUrl,omitempty"`
	Description  string      `json:"description"`
	ContactEmail null.String `json:"contactEmail,omitempty"`
	Benefits     []string    `json:"benefits"`
	SortOrder    int         `json:"sortOrder"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// CreateSponsorInput represents input for creating a sponsor
type CreateSponsorInput struct {
	CompanyName  string   `json:"companyName" binding:"required,min=2,max=160"`
	Tier         string   `json:"tier" binding:"required,oneof=Platinum Gold Silver Bronze"`
	LogoURL      string   `json:"logoUrl"`
	WebsiteURL   string   `json:"websiteUrl"`
	Description  string   `json:"description"`
	ContactEmail string   `json:"contactEmail"`
	Benefits     []string `json:"benefits"`
	SortOrder    int      `json:"sortOrder"`
}

// SponsorPatch lists the sponsor fields an admin edit may change.
type SponsorPatch struct {
	CompanyName  *string   `json:"companyName"`
	Tier         *string   `json:"tier"`
	LogoURL      *string   `json:"logoUrl"`
	WebsiteURL   *string   `json:"websiteUrl"`
	Description  *string   `json:"description"`
	ContactEmail *string   `json:"contactEmail"`
	Benefits     *[]string `json:"benefits"`
	SortOrder    *int      `json:"sortOrder"`
}

// Updates returns the column assignments for the set fields.
func (p SponsorPatch) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setString(updates, "company_name", p.CompanyName)
	setString(updates, "tier", p.Tier)
	setString(updates, "logo_url", p.LogoURL)
	setString(updates, "website_url", p.WebsiteURL)
	setString(updates, "description", p.Description)
	setString(updates, "contact_email", p.ContactEmail)
	setInt(updates, "sort_order", p.SortOrder)
	if p.Benefits != nil {
		updates["benefits"] = *p.Benefits
	}
	return updates
}
