package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/config"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainrepos "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/repositories"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/repositories"
)

const insertBatchSize = 5

var sampleVolunteers = []*entities.Volunteer{
	{Name: "Priya Sharma", Email: "priya.sharma@email.com", Phone: null.StringFrom("+91 98765 43210"), Role: "Registration Desk", ExperienceLevel: null.StringFrom("advanced"), Availability: []string{"Event Day", "Day Before"}, Motivation: "Helped run three community meetups last year.", SortOrder: 1},
	{Name: "Rahul Patel", Email: "rahul.patel@email.com", Role: "Speaker Support", ExperienceLevel: null.StringFrom("intermediate"), Availability: []string{"Event Day"}, Motivation: "Wants to meet the speakers behind the talks.", SortOrder: 2},
	{Name: "Anjali Mehta", Email: "anjali.mehta@email.com", Role: "Photography", Availability: []string{"Event Day", "Day After"}, Motivation: "Loves capturing community moments.", SortOrder: 3},
	{Name: "Kiran Shah", Email: "kiran.shah@email.com", Role: "Social Media", ExperienceLevel: null.StringFrom("beginner"), Availability: []string{"Event Day"}, Motivation: "First event, eager to contribute.", SortOrder: 4},
	{Name: "Nisha Joshi", Email: "nisha.joshi@email.com", Role: "Stage Management", Availability: []string{"Day Before", "Event Day"}, Motivation: "Backstage is where the magic happens.", SortOrder: 5},
	{Name: "Vikram Singh", Email: "vikram.singh@email.com", Role: "Registration Desk", Availability: []string{"Event Day"}, Motivation: "Enjoys welcoming people.", SortOrder: 6},
}

// seedVolunteers inserts the sample volunteers whose email is not yet
// registered, batching the inserts.
func seedVolunteers(ctx context.Context, repo domainrepos.VolunteerRepository, volunteers []*entities.Volunteer) (int, error) {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[v.Email] = true
	}

	missing := make([]*entities.Volunteer, 0, len(volunteers))
	for _, v := range volunteers {
		if !seen[v.Email] {
			missing = append(missing, v)
		}
	}

	inserted := 0
	for start := 0; start < len(missing); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(missing) {
			end = len(missing)
		}
		batch, err := repo.InsertMany(ctx, missing[start:end])
		if err != nil {
			return inserted, err
		}
		inserted += len(batch)
	}
	return inserted, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{PrepareStmt: false})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	repo := repositories.NewVolunteerRepository(db)
	inserted, err := seedVolunteers(context.Background(), repo, sampleVolunteers)
	if err != nil {
		log.Fatalf("seed failed after %d inserts: %v", inserted, err)
	}
	log.Printf("seeded %d volunteers (%d already present)", inserted, len(sampleVolunteers)-inserted)
}
