package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aaryashetye/survey-API/internal/cache"
	"github.com/aaryashetye/survey-API/internal/config"
	"github.com/aaryashetye/survey-API/internal/repository"
	"github.com/aaryashetye/survey-API/internal/service"
	"github.com/aaryashetye/survey-API/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.DBName)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	adminRepo := repository.NewAdminRepo(db)
	surveyRepo := repository.NewSurveyRepo(db)
	surveyorRepo := repository.NewSurveyorRepo(db)
	participantRepo := repository.NewParticipantRepo(db)
	cycleRepo := repository.NewCycleRepo(db)
	questionSetRepo := repository.NewQuestionSetRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	analysisRepo := repository.NewAnalysisRepo(db)

	// Initialize caches
	surveyCache := cache.NewSurveyCache(rdb)
	analysisCache := cache.NewAnalysisCache(rdb)

	// Initialize services
	surveySvc := service.NewSurveyService(surveyRepo, questionSetRepo, participantRepo, surveyCache)
	responseSvc := service.NewResponseService(responseRepo, questionSetRepo)
	analysisSvc := service.NewAnalysisService(responseRepo, analysisCache)

	container := &rest.Container{
		AdminRepo:       adminRepo,
		SurveyorRepo:    surveyorRepo,
		ParticipantRepo: participantRepo,
		CycleRepo:       cycleRepo,
		QuestionSetRepo: questionSetRepo,
		ResponseRepo:    responseRepo,
		AnalysisRepo:    analysisRepo,
		SurveyService:   surveySvc,
		ResponseService: responseSvc,
		AnalysisService: analysisSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
