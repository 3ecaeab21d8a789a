package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/config"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/domain/entities"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/repositories"
)

// speakerFile is the JSON document the tool accepts.
type speakerFile struct {
	Name              string `json:"name" validate:"required,min=2,max=120"`
	Title             string `json:"title"`
	Organization      string `json:"organization"`
	TalkTitle         string `json:"talkTitle" validate:"required"`
	Abstract          string `json:"abstract"`
	Track             string `json:"track"`
	Bio               string `json:"bio"`
	PhotoURL          string `json:"photoUrl"`
	LinkedInURL       string `json:"linkedinUrl" validate:"omitempty,url"`
	TwitterURL        string `json:"twitterUrl" validate:"omitempty,url"`
	GithubURL         string `json:"githubUrl" validate:"omitempty,url"`
	TalkLengthMinutes int    `json:"talkLengthMinutes" validate:"omitempty,min=5,max=180"`
	SortOrder         int    `json:"sortOrder"`
}

func parseSpeakerFile(path string) (*entities.Speaker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file speakerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid speaker: %w", err)
	}

	talkLength := file.TalkLengthMinutes
	if talkLength == 0 {
		talkLength = 30
	}
	return &entities.Speaker{
		Name:              file.Name,
		Title:             file.Title,
		Organization:      file.Organization,
		TalkTitle:         file.TalkTitle,
		Abstract:          file.Abstract,
		Track:             file.Track,
		Bio:               file.Bio,
		PhotoURL:          file.PhotoURL,
		LinkedInURL:       optionalString(file.LinkedInURL),
		TwitterURL:        optionalString(file.TwitterURL),
		GithubURL:         optionalString(file.GithubURL),
		TalkLengthMinutes: talkLength,
		SortOrder:         file.SortOrder,
	}, nil
}

func optionalString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: add-speaker <speaker.json>")
	}

	speaker, err := parseSpeakerFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read speaker file: %v", err)
	}

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
	if err := repo.Create(context.Background(), speaker); err != nil {
		log.Fatalf("failed to create speaker: %v", err)
	}
	log.Printf("created speaker %s (%s)", speaker.Name, speaker.ID)
}
