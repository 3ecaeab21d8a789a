package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
)

type volunteerRepoStub struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entities.Volunteer
}

func newVolunteerRepoStub() *volunteerRepoStub {
	return &volunteerRepoStub{items: map[uuid.UUID]*entities.Volunteer{}}
}

func (s *volunteerRepoStub) sorted() []*entities.Volunteer {
	out := make([]*entities.Volunteer, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func (s *volunteerRepoStub) GetAll(_ context.Context) ([]*entities.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sorted(), nil
}

func (s *volunteerRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *volunteerRepoStub) List(_ context.Context, search string, page, limit int) ([]*entities.Volunteer, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]*entities.Volunteer, 0)
	q := strings.ToLower(search)
	for _, item := range s.sorted() {
		if q == "" || strings.Contains(strings.ToLower(item.Name), q) || strings.Contains(strings.ToLower(item.Email), q) {
			matched = append(matched, item)
		}
	}
	return matched, int64(len(matched)), nil
}

func (s *volunteerRepoStub) Create(_ context.Context, volunteer *entities.Volunteer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if volunteer.ID == uuid.Nil {
		volunteer.ID = uuid.New()
	}
	s.items[volunteer.ID] = volunteer
	return nil
}

func (s *volunteerRepoStub) InsertMany(_ context.Context, volunteers []*entities.Volunteer) ([]*entities.Volunteer, error) {
	for _, volunteer := range volunteers {
		if err := s.Create(context.Background(), volunteer); err != nil {
			return nil, err
		}
	}
	return volunteers, nil
}

func (s *volunteerRepoStub) Upsert(_ context.Context, volunteer *entities.Volunteer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Email == volunteer.Email {
			volunteer.ID = existing.ID
			s.items[existing.ID] = volunteer
			return nil
		}
	}
	volunteer.ID = uuid.New()
	s.items[volunteer.ID] = volunteer
	return nil
}

func (s *volunteerRepoStub) Update(_ context.Context, id uuid.UUID, patch entities.VolunteerPatch) (*entities.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Role != nil {
		item.Role = *patch.Role
	}
	if patch.Motivation != nil {
		item.Motivation = *patch.Motivation
	}
	return item, nil
}

func (s *volunteerRepoStub) UpdateProfile(_ context.Context, id uuid.UUID, patch entities.VolunteerProfilePatch) (*entities.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	return item, nil
}

func (s *volunteerRepoStub) UpdateSortOrder(_ context.Context, id uuid.UUID, sortOrder int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.SortOrder = sortOrder
	return nil
}

func (s *volunteerRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func newVolunteerRouter(repo *volunteerRepoStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewVolunteerHandler(repo)
	r := gin.New()
	r.POST("/volunteers/signup", h.Signup)
	r.GET("/volunteers", h.ListPublicVolunteers)
	r.GET("/admin/volunteers", h.ListAdminVolunteers)
	r.GET("/admin/volunteers/:id", h.GetVolunteer)
	r.PATCH("/admin/volunteers/:id", h.UpdateVolunteer)
	r.PATCH("/admin/volunteers/:id/profile", h.UpdateVolunteerProfile)
	r.DELETE("/admin/volunteers/:id", h.DeleteVolunteer)
	r.POST("/admin/volunteers/reorder", h.ReorderVolunteers)
	r.POST("/admin/volunteers/bulk-delete", h.BulkDeleteVolunteers)
	return r
}

func TestVolunteerHandler_SignupIsUpsertByEmail(t *testing.T) {
	repo := newVolunteerRepoStub()
	r := newVolunteerRouter(repo)

	payload := map[string]any{
		"name":       "Priya Sharma",
		"email":      "priya@email.com",
		"role":       "Registration Desk",
		"motivation": "First motivation",
	}
	rec := doJSON(t, r, http.MethodPost, "/volunteers/signup", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	payload["motivation"] = "Second motivation"
	rec = doJSON(t, r, http.MethodPost, "/volunteers/signup", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on repeat signup, got %d body=%s", rec.Code, rec.Body.String())
	}

	if len(repo.items) != 1 {
		t.Fatalf("expected 1 record after duplicate signup, got %d", len(repo.items))
	}
	for _, item := range repo.items {
		if item.Motivation != "Second motivation" {
			t.Fatalf("expected latest motivation, got %q", item.Motivation)
		}
	}
}

func TestVolunteerHandler_SignupValidation(t *testing.T) {
	r := newVolunteerRouter(newVolunteerRepoStub())

	rec := doJSON(t, r, http.MethodPost, "/volunteers/signup", map[string]any{
		"name":  "No Email",
		"role":  "Photography",
		"email": "not-an-email",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestVolunteerHandler_ProfilePatchIgnoresOtherFields(t *testing.T) {
	repo := newVolunteerRepoStub()
	r := newVolunteerRouter(repo)

	volunteer := &entities.Volunteer{
		Name:       "Anjali Mehta",
		Email:      "anjali@email.com",
		Role:       "Photography",
		Motivation: "Capture moments",
	}
	if err := repo.Create(context.Background(), volunteer); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// The profile endpoint binds only name, photoUrl and linkedinUrl;
	// the role field in the payload has no effect.
	rec := doJSON(t, r, http.MethodPatch, "/admin/volunteers/"+volunteer.ID.String()+"/profile", map[string]any{
		"name": "Anjali M.",
		"role": "Stage Manager",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Volunteer entities.Volunteer `json:"volunteer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Volunteer.Name != "Anjali M." {
		t.Fatalf("expected renamed volunteer, got %q", resp.Volunteer.Name)
	}
	if resp.Volunteer.Role != "Photography" {
		t.Fatalf("role must not change through the profile patch, got %q", resp.Volunteer.Role)
	}
}

func TestVolunteerHandler_NotFoundMessage(t *testing.T) {
	r := newVolunteerRouter(newVolunteerRepoStub())

	rec := doJSON(t, r, http.MethodGet, "/admin/volunteers/"+uuid.NewString(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "No volunteers found with that ID") {
		t.Fatalf("unexpected not-found body: %s", rec.Body.String())
	}

	rec = doJSON(t, r, http.MethodPatch, "/admin/volunteers/"+uuid.NewString()+"/profile", map[string]any{"name": "Ghost"})
	if !strings.Contains(rec.Body.String(), "No volunteers found with that ID") {
		t.Fatalf("unexpected not-found body: %s", rec.Body.String())
	}
}

func TestVolunteerHandler_Reorder(t *testing.T) {
	repo := newVolunteerRepoStub()
	r := newVolunteerRouter(repo)

	ids := make([]uuid.UUID, 3)
	for i := range ids {
		v := &entities.Volunteer{
			Name:      "Volunteer",
			Email:     uuid.NewString() + "@email.com",
			Role:      "Registration Desk",
			SortOrder: i + 1,
		}
		if err := repo.Create(context.Background(), v); err != nil {
			t.Fatalf("seed: %v", err)
		}
		ids[i] = v.ID
	}

	rec := doJSON(t, r, http.MethodPost, "/admin/volunteers/reorder", map[string]any{
		"page":      1,
		"fromIndex": 2,
		"toIndex":   0,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if repo.items[ids[2]].SortOrder != 1 {
		t.Fatalf("expected moved volunteer at order 1, got %d", repo.items[ids[2]].SortOrder)
	}

	// Out of range index on the displayed page.
	rec = doJSON(t, r, http.MethodPost, "/admin/volunteers/reorder", map[string]any{
		"page":      1,
		"fromIndex": 0,
		"toIndex":   9,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}
