package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-analyzer/internal/config"
	"github.com/iamasit07/connect4-analyzer/internal/domain"
	"github.com/iamasit07/connect4-analyzer/internal/event"
	"github.com/iamasit07/connect4-analyzer/internal/repository/postgres"
	"github.com/iamasit07/connect4-analyzer/internal/repository/redis"
	"github.com/iamasit07/connect4-analyzer/internal/service/analysis"
	"github.com/iamasit07/connect4-analyzer/internal/service/bot"
	"github.com/iamasit07/connect4-analyzer/internal/service/capture"
	"github.com/iamasit07/connect4-analyzer/internal/service/cleanup"
	transportHttp "github.com/iamasit07/connect4-analyzer/internal/transport/http"
	"github.com/iamasit07/connect4-analyzer/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	// 1. History store (optional: without DATABASE_URL the service runs stateless)
	var repo analysis.AnalysisRepository
	var cleanupWorker *cleanup.Worker
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		cancel()
		if err != nil {
			log.Fatal("Database unreachable:", err)
		}
		defer db.Close()

		log.Println("Running database migrations...")
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		analysisRepo := postgres.NewAnalysisRepo(db)
		repo = analysisRepo
		cleanupWorker = cleanup.NewWorker(analysisRepo, cfg.HistoryRetentionDays)
	} else {
		log.Println("DATABASE_URL not set, analysis history disabled")
	}

	// 2. Winner cache
	if err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	defer redis.CloseRedis()

	var cache analysis.CacheRepository
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	// 3. Analytics stream
	var events analysis.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := event.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, event.SASLConfig{User: cfg.KafkaUser, Password: cfg.KafkaPassword})
		if err != nil {
			log.Printf("[KAFKA] Warning: could not connect producer: %v", err)
		} else {
			defer producer.Close()
			events = producer
		}
	}

	// 4. Services
	connManager := websocket.NewConnectionManager()
	selector := bot.NewSelector(bot.NewRandomChooser(cfg.BotRandomSeed))
	analysisService := analysis.NewService(selector, repo, cache, events, connManager, cfg.WinCacheTTL)
	captureClient := capture.NewClient(cfg.CaptureURL, cfg.CaptureTimeout)

	if cleanupWorker != nil {
		cleanupWorker.Start()
		defer cleanupWorker.Stop()
	}

	// 5. HTTP
	router := transportHttp.NewRouter(transportHttp.Routes{
		Board:          transportHttp.NewBoardHandler(analysisService, domain.Cell(cfg.DefaultPlayer)),
		Capture:        transportHttp.NewCaptureHandler(captureClient),
		History:        transportHttp.NewHistoryHandler(analysisService),
		Watch:          websocket.NewHandler(connManager).HandleWatch,
		AllowedOrigins: cfg.AllowedOrigins,
		JWTSecret:      cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Connect Four analysis service starting on :%s", cfg.Port)
		log.Println("  POST /analyze        - choose the robot's next column")
		log.Println("  POST /check_winner   - check for four in a row")
		log.Println("  POST /cleanup        - occupancy array for the cleanup robot")
		log.Printf("  POST /capture_board  - forward capture to %s", cfg.CaptureURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	connManager.CloseAll()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
