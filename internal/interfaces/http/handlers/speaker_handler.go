package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/repositories"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/response"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/usecases"
)

type SpeakerHandler struct {
	repo    repositories.SpeakerRepository
	reorder *usecases.ReorderUsecase
}

func NewSpeakerHandler(repo repositories.SpeakerRepository) *SpeakerHandler {
	return &SpeakerHandler{
		repo:    repo,
		reorder: usecases.NewReorderUsecase(repo),
	}
}

// ListPublicSpeakers returns all speakers in display order.
// GET /api/v1/speakers
func (h *SpeakerHandler) ListPublicSpeakers(c *gin.Context) {
	items, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListAdminSpeakers returns speakers with search and pagination for
// the admin table.
// GET /api/v1/admin/speakers
func (h *SpeakerHandler) ListAdminSpeakers(c *gin.Context) {
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

// GetSpeaker returns a single speaker.
// GET /api/v1/admin/speakers/:id
func (h *SpeakerHandler) GetSpeaker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid speaker ID"))
		return
	}

	speaker, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "No speakers found with that ID")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"speaker": speaker})
}

// CreateSpeaker creates a speaker.
// POST /api/v1/admin/speakers
func (h *SpeakerHandler) CreateSpeaker(c *gin.Context) {
	var input entities.CreateSpeakerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	speaker := speakerFromInput(&input)
	if err := h.repo.Create(c.Request.Context(), speaker); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Speaker created",
		"speaker": speaker,
	})
}

// UpdateSpeaker applies a partial update.
// PATCH /api/v1/admin/speakers/:id
func (h *SpeakerHandler) UpdateSpeaker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid speaker ID"))
		return
	}

	var patch entities.SpeakerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	speaker, err := h.repo.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, "No speakers found with that ID")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message": "Speaker updated",
		"speaker": speaker,
	})
}

// DeleteSpeaker removes a speaker.
// DELETE /api/v1/admin/speakers/:id
func (h *SpeakerHandler) DeleteSpeaker(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid speaker ID"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Speaker deleted"})
}

// ReorderSpeakers applies a drag and drop move within the displayed
// admin table page.
// POST /api/v1/admin/speakers/reorder
func (h *SpeakerHandler) ReorderSpeakers(c *gin.Context) {
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

	speakers, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]usecases.ReorderItem, len(speakers))
	for i, s := range speakers {
		items[i] = usecases.ReorderItem{ID: s.ID, Name: s.Name}
	}

	result, err := h.reorder.Reorder(c.Request.Context(), items, input.Search, input.Page, input.FromIndex, input.ToIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// BulkDeleteSpeakers deletes the selected speakers in parallel and
// reports per-row outcomes.
// POST /api/v1/admin/speakers/bulk-delete
func (h *SpeakerHandler) BulkDeleteSpeakers(c *gin.Context) {
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

func speakerFromInput(input *entities.CreateSpeakerInput) *entities.Speaker {
	talkLength := input.TalkLengthMinutes
	if talkLength == 0 {
		talkLength = 30
	}
	return &entities.Speaker{
		Name:              input.Name,
		Title:             input.Title,
		Organization:      input.Organization,
		TalkTitle:         input.TalkTitle,
		Abstract:          input.Abstract,
		Track:             input.Track,
		Bio:               input.Bio,
		PhotoURL:          input.PhotoURL,
		LinkedInURL:       nullStringFrom(input.LinkedInURL),
		TwitterURL:        nullStringFrom(input.TwitterURL),
		GithubURL:         nullStringFrom(input.GithubURL),
		TalkLengthMinutes: talkLength,
		SortOrder:         input.SortOrder,
	}
}

func nullStringFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
