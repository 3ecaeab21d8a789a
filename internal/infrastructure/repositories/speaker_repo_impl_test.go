package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainerrors "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/errors"
)

func TestSpeakerRepository_CreateAndGetByID(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)
	ctx := context.Background()

	speaker := &entities.Speaker{
		Name:              "Asha Raman",
		Title:             "Principal Engineer",
		Organization:      "CloudWorks",
		TalkTitle:         "Serverless at Scale",
		Abstract:          "Lessons from running Lambda in production.",
		Track:             "Serverless",
		Bio:               "Builds things.",
		PhotoURL:          "https://img/asha.jpg",
		LinkedInURL:       null.StringFrom("https://linkedin.com/in/asha"),
		TalkLengthMinutes: 45,
		SortOrder:         1,
	}

	require.NoError(t, repo.Create(ctx, speaker))
	require.NotEqual(t, uuid.Nil, speaker.ID)
	require.False(t, speaker.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, speaker.ID)
	require.NoError(t, err)
	require.Equal(t, speaker.Name, got.Name)
	require.Equal(t, speaker.TalkTitle, got.TalkTitle)
	require.Equal(t, speaker.LinkedInURL, got.LinkedInURL)
	require.False(t, got.TwitterURL.Valid)
	require.Equal(t, 45, got.TalkLengthMinutes)
}

func TestSpeakerRepository_GetAll_OrderedBySortOrder(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)
	ctx := context.Background()

	for _, order := range []int{3, 1, 2} {
		require.NoError(t, repo.Create(ctx, &entities.Speaker{
			Name:      "Speaker",
			TalkTitle: "Talk",
			SortOrder: order,
		}))
	}

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i := 1; i < len(items); i++ {
		require.LessOrEqual(t, items[i-1].SortOrder, items[i].SortOrder)
	}
}

func TestSpeakerRepository_GetAll_EmptyIsNotNil(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestSpeakerRepository_Update_PatchesOnlyNamedFields(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)
	ctx := context.Background()

	speaker := &entities.Speaker{
		Name:              "Asha Raman",
		Organization:      "CloudWorks",
		TalkTitle:         "Serverless at Scale",
		TalkLengthMinutes: 45,
		SortOrder:         2,
	}
	require.NoError(t, repo.Create(ctx, speaker))

	newTitle := "Serverless, Revisited"
	updated, err := repo.Update(ctx, speaker.ID, entities.SpeakerPatch{TalkTitle: &newTitle})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.TalkTitle)
	require.Equal(t, "Asha Raman", updated.Name)
	require.Equal(t, "CloudWorks", updated.Organization)
	require.Equal(t, 45, updated.TalkLengthMinutes)
	require.Equal(t, 2, updated.SortOrder)
}

func TestSpeakerRepository_Update_MissingIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)

	name := "Nobody"
	_, err := repo.Update(context.Background(), uuid.New(), entities.SpeakerPatch{Name: &name})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSpeakerRepository_Delete_ThenGetIsAbsent(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)
	ctx := context.Background()

	speaker := &entities.Speaker{Name: "Gone", TalkTitle: "Soon"}
	require.NoError(t, repo.Create(ctx, speaker))

	require.NoError(t, repo.Delete(ctx, speaker.ID))
	_, err := repo.GetByID(ctx, speaker.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	// Deleting again must not report an error.
	require.NoError(t, repo.Delete(ctx, speaker.ID))
}

func TestSpeakerRepository_InsertMany(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)
	ctx := context.Background()

	inserted, err := repo.InsertMany(ctx, []*entities.Speaker{
		{Name: "One", TalkTitle: "A", SortOrder: 1},
		{Name: "Two", TalkTitle: "B", SortOrder: 2},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 2)

	// Empty input is an explicit no-op.
	none, err := repo.InsertMany(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestSpeakerRepository_List_SearchAndPagination(t *testing.T) {
	db := newTestDB(t)
	createSpeakerTable(t, db)
	repo := NewSpeakerRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Speaker{Name: "Asha Raman", TalkTitle: "Serverless at Scale", SortOrder: 1}))
	require.NoError(t, repo.Create(ctx, &entities.Speaker{Name: "Dev Patel", TalkTitle: "EKS Networking", SortOrder: 2}))
	require.NoError(t, repo.Create(ctx, &entities.Speaker{Name: "Meera Iyer", TalkTitle: "Bedrock Agents", SortOrder: 3}))

	items, total, err := repo.List(ctx, "SERVERLESS", 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	require.Equal(t, "Asha Raman", items[0].Name)

	items, total, err = repo.List(ctx, "", 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	require.Equal(t, "Meera Iyer", items[0].Name)
}
