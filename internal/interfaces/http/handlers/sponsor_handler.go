package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/repositories"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/response"
)

type SponsorHandler struct {
	repo repositories.SponsorRepository
}

func NewSponsorHandler(repo repositories.SponsorRepository) *SponsorHandler {
	return &SponsorHandler{repo: repo}
}

// ListPublicSponsors returns all sponsors in display order.
// GET /api/v1/sponsors
func (h *SponsorHandler) ListPublicSponsors(c *gin.Context) {
	items, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetSponsor returns a single sponsor.
// GET /api/v1/admin/sponsors/:id
func (h *SponsorHandler) GetSponsor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid sponsor ID"))
		return
	}

	sponsor, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "No sponsors found with that ID")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sponsor": sponsor})
}

// CreateSponsor creates a sponsor.
// POST /api/v1/admin/sponsors
func (h *SponsorHandler) CreateSponsor(c *gin.Context) {
	var input entities.CreateSponsorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	benefits := input.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	sponsor := &entities.Sponsor{
		CompanyName:  input.CompanyName,
		Tier:         entities.SponsorTier(input.Tier),
		LogoURL:      input.LogoURL,
		WebsiteURL:   nullStringFrom(input.WebsiteURL),
		Description:  input.Description,
		ContactEmail: nullStringFrom(input.ContactEmail),
		Benefits:     benefits,
		SortOrder:    input.SortOrder,
	}

	if err := h.repo.Create(c.Request.Context(), sponsor); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Sponsor created",
		"sponsor": sponsor,
	})
}

// UpdateSponsor applies a partial update.
// PATCH /api/v1/admin/sponsors/:id
func (h *SponsorHandler) UpdateSponsor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid sponsor ID"))
		return
	}

	var patch entities.SponsorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	sponsor, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "No sponsors found with that ID")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Sponsor updated",
		"sponsor": sponsor,
	})
}

// DeleteSponsor removes a sponsor.
// DELETE /api/v1/admin/sponsors/:id
func (h *SponsorHandler) DeleteSponsor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid sponsor ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Sponsor deleted"})
}
