package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"applicant-portal-service/internal/cache"
	"applicant-portal-service/internal/config"
	"applicant-portal-service/internal/database/mongo"
	"applicant-portal-service/internal/database/redis"
	"applicant-portal-service/internal/event"
	"applicant-portal-service/internal/handlers"
	"applicant-portal-service/internal/middleware"
	"applicant-portal-service/internal/repository"
	"applicant-portal-service/internal/upstream"
	"applicant-portal-service/pkg/discovery"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/portal", "log", "applicant_portal_service")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.ServiceConfig

	if err := mongo.InitMongoDB(&cfg.MongoDB); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := redis.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Applicant Portal Service is healthy")
	})

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepository(mongo.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := submissionRepo.CreateIndexes(ctx); err != nil {
		log.Printf("Warning: Failed to create submission indexes: %v", err)
	}
	cancel()

	// Initialize event publisher
	eventPublisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Printf("Warning: Failed to initialize event publisher: %v", err)
		eventPublisher = &event.EventPublisher{}
	}

	// Register with service discovery; the registry doubles as the resolver
	// for the backend this gateway fronts.
	serviceRegistry, err := discovery.NewServiceRegistry(cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize service discovery: %v", err)
	} else {
		if err := serviceRegistry.Register(); err != nil {
			log.Printf("Warning: Failed to register with service discovery: %v", err)
		}
	}

	var resolver upstream.AddressResolver
	if serviceRegistry != nil {
		resolver = serviceRegistry
	}
	upstreamClient := upstream.NewClient(&cfg.Upstream, resolver)

	queryCache := cache.NewQueryCache(redis.Redis_Client, cfg.Portal.CacheTTL)
	jwtService := middleware.NewJWTService(cfg.Auth.JWTSecret)

	// Initialize and register handlers
	formsHandler := handlers.NewFormsHandler(upstreamClient, submissionRepo, eventPublisher, queryCache, jwtService)
	formsHandler.RegisterRoutes(app)
	accountHandler := handlers.NewAccountHandler(upstreamClient, submissionRepo, queryCache, jwtService)
	accountHandler.RegisterRoutes(app)

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	if eventPublisher != nil {
		if err := eventPublisher.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}

	mongo.CloseDB()
	redis.CloseRedis()

	if serviceRegistry != nil {
		if err := serviceRegistry.Deregister(); err != nil {
			log.Printf("Error deregistering from service discovery: %v", err)
		}
	}

	<-doneChan
	log.Println("Server shutdown complete")
}
