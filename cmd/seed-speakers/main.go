package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/config"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	domainrepos "github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/repositories"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/repositories"
)

const insertBatchSize = 5

var sampleSpeakers = []*entities.Speaker{
	{Name: "Asha Raman", Title: "Principal Engineer", Organization: "CloudWorks", TalkTitle: "Serverless at Scale", Track: "Serverless", TalkLengthMinutes: 45, SortOrder: 1},
	{Name: "Dev Patel", Title: "Platform Lead", Organization: "ShipFast Labs", TalkTitle: "EKS Networking Deep Dive", Track: "Containers", TalkLengthMinutes: 45, SortOrder: 2},
	{Name: "Meera Iyer", Title: "ML Engineer", Organization: "DataForge", TalkTitle: "Building Agents with Bedrock", Track: "AI/ML", TalkLengthMinutes: 30, SortOrder: 3},
	{Name: "Rohan Desai", Title: "Solutions Architect", Organization: "Finova", TalkTitle: "Event-Driven Architectures on AWS", Track: "Architecture", TalkLengthMinutes: 30, SortOrder: 4},
	{Name: "Sneha Kulkarni", Title: "SRE", Organization: "Uptime Systems", TalkTitle: "Observability Beyond Dashboards", Track: "DevOps", TalkLengthMinutes: 30, SortOrder: 5},
	{Name: "Arjun Nair", Title: "Security Engineer", Organization: "SafeStack", TalkTitle: "IAM Pitfalls and How to Avoid Them", Track: "Security", TalkLengthMinutes: 45, SortOrder: 6},
	{Name: "Kavya Shah", Title: "Data Engineer", Organization: "StreamWorks", TalkTitle: "Real-Time Pipelines with Kinesis", Track: "Data", TalkLengthMinutes: 30, SortOrder: 7},
}

// seedSpeakers inserts the sample speakers that are not already
// present, batching the inserts. Existing speakers are matched by
// name and left untouched.
func seedSpeakers(ctx context.Context, repo domainrepos.SpeakerRepository, speakers []*entities.Speaker) (int, error) {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[s.Name] = true
	}

	missing := make([]*entities.Speaker, 0, len(speakers))
	for _, s := range speakers {
		if !seen[s.Name] {
			missing = append(missing, s)
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

	repo := repositories.NewSpeakerRepository(db)
	inserted, err := seedSpeakers(context.Background(), repo, sampleSpeakers)
	if err != nil {
		log.Fatalf("seed failed after %d inserts: %v", inserted, err)
	}
	log.Printf("seeded %d speakers (%d already present)", inserted, len(sampleSpeakers)-inserted)
}
