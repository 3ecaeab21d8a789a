package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
)

type volunteerRepoStub struct {
	items   []*entities.Volunteer
	batches []int
}

func (s *volunteerRepoStub) GetAll(_ context.Context) ([]*entities.Volunteer, error) {
	return s.items, nil
}

func (s *volunteerRepoStub) GetByID(_ context.Context, _ uuid.UUID) (*entities.Volunteer, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *volunteerRepoStub) List(_ context.Context, _ string, _, _ int) ([]*entities.Volunteer, int64, error) {
	return s.items, int64(len(s.items)), nil
}

func (s *volunteerRepoStub) Create(_ context.Context, volunteer *entities.Volunteer) error {
	s.items = append(s.items, volunteer)
	return nil
}

func (s *volunteerRepoStub) InsertMany(_ context.Context, volunteers []*entities.Volunteer) ([]*entities.Volunteer, error) {
	s.batches = append(s.batches, len(volunteers))
	s.items = append(s.items, volunteers...)
	return volunteers, nil
}

func (s *volunteerRepoStub) Upsert(_ context.Context, volunteer *entities.Volunteer) error {
	s.items = append(s.items, volunteer)
	return nil
}

func (s *volunteerRepoStub) Update(_ context.Context, _ uuid.UUID, _ entities.VolunteerPatch) (*entities.Volunteer, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *volunteerRepoStub) UpdateProfile(_ context.Context, _ uuid.UUID, _ entities.VolunteerProfilePatch) (*entities.Volunteer, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *volunteerRepoStub) UpdateSortOrder(_ context.Context, _ uuid.UUID, _ int) error {
	return nil
}

func (s *volunteerRepoStub) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func TestSeedVolunteers_BatchesAndDedupesByEmail(t *testing.T) {
	repo := &volunteerRepoStub{
		items: []*entities.Volunteer{
			{Name: "Already There", Email: "priya.sharma@email.com"},
		},
	}

	inserted, err := seedVolunteers(context.Background(), repo, sampleVolunteers)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if inserted != len(sampleVolunteers)-1 {
		t.Fatalf("expected %d inserted, got %d", len(sampleVolunteers)-1, inserted)
	}
	// Five missing volunteers fit in a single batch.
	if len(repo.batches) != 1 || repo.batches[0] != 5 {
		t.Fatalf("unexpected batching: %v", repo.batches)
	}
}
