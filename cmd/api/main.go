package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tradelog/internal/config"
	"tradelog/internal/database"
	"tradelog/internal/handlers"
	"tradelog/internal/logger"
	"tradelog/internal/middleware"
	"tradelog/internal/review"
	"tradelog/internal/services"
	"tradelog/internal/validator"

	_ "tradelog/internal/docs" // Import swagger docs
)

// @title           Tradelog API
// @version         1.0
// @description     Tradelog is an investment journal service for recording trade decisions, sell records, and AI-generated reviews.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if closeErr := dbManager.Close(); closeErr != nil {
			log.Warnf("database close error: %v", closeErr)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	generator := review.NewClient(appConfig.ReviewBaseURL, appConfig.ReviewModel,
		appConfig.ReviewMaxTokens, appConfig.ReviewTimeout)
	journalService := services.NewJournalService(db)
	reviewService := services.NewReviewService(db, generator)

	// Initialize handlers
	journalHandler := handlers.NewJournalHandler(journalService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	journals := v1.Group("/journals")
	journals.GET("", journalHandler.ListJournals)
	journals.GET("/archived", journalHandler.ListArchivedJournals)
	journals.POST("", journalHandler.CreateJournal)
	journals.PUT("/:id", journalHandler.UpdateJournal)
	journals.DELETE("/:id", journalHandler.ArchiveJournal)
	journals.POST("/:id/unarchive", journalHandler.UnarchiveJournal)
	journals.POST("/:id/reviews", reviewHandler.AddReviewLog)
	journals.POST("/:id/reviews/generate", reviewHandler.GenerateReview)

	log.Infof("Starting tradelog server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
