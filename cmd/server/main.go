package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salescall/internal/cache"
	"salescall/internal/config"
	"salescall/internal/language"
	"salescall/internal/repository"
	"salescall/internal/service"
	"salescall/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg := config.Load()
	langCfg := config.LoadLanguageConfig()
	log.Printf("Language config:")
	log.Printf("  Canonical:  %v", langCfg.Canonical)
	log.Printf("  Threshold:  %.2f", langCfg.ConfidenceThreshold)
	log.Printf("  Default:    %s", langCfg.DefaultLanguage)
	log.Printf("  Fallback:   %s", langCfg.FallbackLanguage)

	// MongoDB connection
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

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	customerRepo := repository.NewCustomerRepo(db)
	agentRepo := repository.NewAgentRepo(db)

	// Initialize caches
	agentCache := cache.NewAgentCache(rdb)
	prefCache := cache.NewPreferenceCache(rdb)

	// Initialize the language engine and services
	detector := language.NewDetector(langCfg)
	advisor := service.NewAdvisor(langCfg)
	verifySvc := service.NewVerificationService(customerRepo, agentRepo, agentCache, prefCache, detector, advisor, langCfg)

	container := &rest.Container{
		VerificationService: verifySvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/language/detect")
		log.Println("  POST /v1/customers/{customerId}/language/verify")
		log.Println("  POST /v1/customers/{customerId}/language/confirm")
		log.Println("  GET  /v1/agents")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
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
