package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/repositories"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/response"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/usecases"
)

type VolunteerHandler struct {
	repo    repositories.VolunteerRepository
	reorder *usecases.ReorderUsecase
}

func NewVolunteerHandler(repo repositories.VolunteerRepository) *VolunteerHandler {
	return &VolunteerHandler{
		repo:    repo,
		reorder: usecases.NewReorderUsecase(repo),
	}
}

// Signup handles the public volunteer sign-up form. Signing up twice
// with the same email updates the earlier record instead of failing.
// POST /api/v1/volunteers/signup
func (h *VolunteerHandler) Signup(c *gin.Context) {
	var input entities.VolunteerSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	volunteer := volunteerFromSignup(&input)
	if err := h.repo.Upsert(c.Request.Context(), volunteer); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":   "Thank you for signing up!",
		"volunteer": volunteer,
	})
}

// ListPublicVolunteers returns all volunteers in display order.
// GET /api/v1/volunteers
func (h *VolunteerHandler) ListPublicVolunteers(c *gin.Context) {
	items, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListAdminVolunteers returns volunteers with search and pagination.
// GET /api/v1/admin/volunteers
func (h *VolunteerHandler) ListAdminVolunteers(c *gin.Context) {
	params := paginationFromQuery(c)
	search := c.Query("search")

	items, total, err := h.repo.List(c.Request.Context(), search, params.Page, params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items": items,
		"meta":  metaFor(total, params),
	})
}

// GetVolunteer returns a single volunteer.
// GET /api/v1/admin/volunteers/:id
func (h *VolunteerHandler) GetVolunteer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid volunteer ID"))
		return
	}

	volunteer, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "No volunteers found with that ID")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"volunteer": volunteer})
}

// UpdateVolunteer applies a full admin partial update.
// PATCH /api/v1/admin/volunteers/:id
func (h *VolunteerHandler) UpdateVolunteer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid volunteer ID"))
		return
	}

	var patch entities.VolunteerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	volunteer, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "No volunteers found with that ID")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":   "Volunteer updated",
		"volunteer": volunteer,
	})
}

// UpdateVolunteerProfile applies the restricted profile patch. Only
// name, photo and LinkedIn can change through this path.
// PATCH /api/v1/admin/volunteers/:id/profile
func (h *VolunteerHandler) UpdateVolunteerProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid volunteer ID"))
		return
	}

	var patch entities.VolunteerProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	volunteer, err := h.repo.UpdateProfile(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "No volunteers found with that ID")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":   "Volunteer profile updated",
		"volunteer": volunteer,
	})
}

// DeleteVolunteer removes a volunteer.
// DELETE /api/v1/admin/volunteers/:id
func (h *VolunteerHandler) DeleteVolunteer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid volunteer ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Volunteer deleted"})
}

// ReorderVolunteers applies a drag and drop move within the displayed
// admin table page.
// POST /api/v1/admin/volunteers/reorder
func (h *VolunteerHandler) ReorderVolunteers(c *gin.Context) {
	var input struct {
		Search    string `json:"search"`
		Page      int    `json:"page"`
		FromIndex int    `json:"fromIndex"`
		ToIndex   int    `json:"toIndex"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	volunteers, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]usecases.ReorderItem, len(volunteers))
	for i, v := range volunteers {
		items[i] = usecases.ReorderItem{ID: v.ID, Name: v.Name, Email: v.Email, Role: v.Role}
	}

	result, err := h.reorder.Reorder(c.Request.Context(), items, input.Search, input.Page, input.FromIndex, input.ToIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// BulkDeleteVolunteers deletes the selected volunteers in parallel.
// POST /api/v1/admin/volunteers/bulk-delete
func (h *VolunteerHandler) BulkDeleteVolunteers(c *gin.Context) {
	var input struct {
		IDs []uuid.UUID `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result := usecases.DeleteMany(c.Request.Context(), h.repo, input.IDs)
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

func volunteerFromSignup(input *entities.VolunteerSignupInput) *entities.Volunteer {
	availability := input.Availability
	if availability == nil {
		availability = []string{}
	}
	return &entities.Volunteer{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           nullStringFrom(input.Phone),
		Role:            input.Role,
		ExperienceLevel: nullStringFrom(input.ExperienceLevel),
		Availability:    availability,
		Motivation:      input.Motivation,
		PhotoURL:        nullStringFrom(input.PhotoURL),
		LinkedInURL:     nullStringFrom(input.LinkedInURL),
		TwitterURL:      nullStringFrom(input.TwitterURL),
		GithubURL:       nullStringFrom(input.GithubURL),
	}
}
