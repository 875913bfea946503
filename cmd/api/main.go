package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dia/internal/config"
	"dia/internal/database"
	"dia/internal/handlers"
	"dia/internal/logger"
	"dia/internal/middleware"
	"dia/internal/services"
	"dia/internal/store"
	"dia/internal/validator"

	_ "dia/internal/docs" // Import swagger docs
)

// @title           DIA API
// @version         1.0
// @description     DIA (Digital Investment Accelerator) is a micro-investment backend: users invest into fixed funds via deposits, round-ups, and withdrawals, and can view their portfolio and the investor leaderboard.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the opaque token issued at login.

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
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Resolve the storage backend. The ledger operations are identical under
	// both; only the store behind them changes.
	var st store.Store
	switch cfg.StorageBackend {
	case config.StorageMemory:
		log.Info("Using transient in-memory storage")
		st = store.NewMemoryStore()
	case config.StoragePostgres:
		dbManager, err := database.NewManager(cfg)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		st = store.NewGormStore(dbManager.DB())
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	// Initialize services
	userService := services.NewUserService(st)
	ledgerService := services.NewLedgerService(st)
	fundService := services.NewFundService(userService)
	leaderboardService := services.NewLeaderboardService(st, cfg.LeaderboardDemoPadding)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(userService, ledgerService)
	fundHandler := handlers.NewFundHandler(fundService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	systemHandler := handlers.NewSystemHandler(st, cfg.StorageBackend)

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

	// Service banner
	router.GET("/", systemHandler.Index)
	router.NoRoute(systemHandler.NotFound)

	api := router.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/funds", fundHandler.ListFunds)
	api.GET("/leaderboard", leaderboardHandler.Leaderboard)
	api.GET("/health", systemHandler.Health)
	api.GET("/b2b-status", systemHandler.B2BStatus)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.TokenAuth(userService))

	protected.GET("/user/:user_id/portfolio", portfolioHandler.GetPortfolio)
	protected.GET("/funds/recommend", fundHandler.Recommend)
	protected.GET("/transactions", transactionHandler.History)
	protected.POST("/transactions/deposit", transactionHandler.Deposit)
	protected.POST("/transactions/roundup", transactionHandler.RoundUp)
	protected.POST("/transactions/withdraw", transactionHandler.Withdraw)

	log.Infof("Starting DIA backend server on port %s (storage: %s)", cfg.Port, cfg.StorageBackend)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
