package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/config"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/repositories"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/infrastructure/storage"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/handlers"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/interfaces/http/middleware"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/internal/usecases"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/jwt"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/logger"
	"github.com/yogesh0720/aws-community-day-ahmedabad-2026/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.Session.JWTSecret, cfg.Session.Expiry)

	speakerRepo := repositories.NewSpeakerRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)
	sponsorRepo := repositories.NewSponsorRepository(db)
	adminUserRepo := repositories.NewAdminUserRepository(db)

	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	bucketStore := storage.NewBucketStore(cfg.Storage)

	authUsecase := usecases.NewAuthUsecase(adminUserRepo, sessionStore, jwtService, cfg.Session.Expiry)

	authHandler := handlers.NewAuthHandler(authUsecase)
	speakerHandler := handlers.NewSpeakerHandler(speakerRepo)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerRepo)
	sponsorHandler := handlers.NewSponsorHandler(sponsorRepo)
	uploadHandler := handlers.NewUploadHandler(bucketStore)

	adminAuth := middleware.AdminAuthMiddleware(jwtService, authUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	r.Static("/uploads", cfg.Storage.Root)

	registerAPIV1Routes(r, routeDeps{
		authHandler:      authHandler,
		speakerHandler:   speakerHandler,
		volunteerHandler: volunteerHandler,
		sponsorHandler:   sponsorHandler,
		uploadHandler:    uploadHandler,
		adminAuth:        adminAuth,
	})

	log.Printf("Community Day backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
