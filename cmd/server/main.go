package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aiready/internal/cache"
	"aiready/internal/config"
	"aiready/internal/repository"
	"aiready/internal/service"
	"aiready/internal/transport/rest"
	"aiready/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	templateRepo := repository.NewTemplateRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Initialize caches
	insightCache := cache.NewInsightCache(rdb)
	peerCache := cache.NewPeerCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	templateSvc := service.NewTemplateService(templateRepo)
	assessmentSvc := service.NewAssessmentService(templateRepo, responseRepo, resultRepo, peerCache)
	insightSvc := service.NewInsightService(responseRepo, resultRepo, insightCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)
	insightSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		Config:            cfg,
		AuthService:       authSvc,
		TemplateService:   templateSvc,
		AssessmentService: assessmentSvc,
		InsightService:    insightSvc,
		WSHub:             wsHub,
	}
	router := rest.NewRouter(container)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error:", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
