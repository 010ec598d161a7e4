package main

import (
	"log"

	"github.com/arremato/portfolio-api/internal/config"
	"github.com/arremato/portfolio-api/internal/database"
	"github.com/arremato/portfolio-api/internal/handlers"
	"github.com/arremato/portfolio-api/internal/middleware"
	"github.com/arremato/portfolio-api/internal/repository"
	"github.com/arremato/portfolio-api/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(db); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	constructionRepo := repository.NewConstructionRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	// Services
	ownership := services.NewOwnershipService(propertyRepo, taskRepo, transactionRepo, constructionRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	propertyService := services.NewPropertyService(propertyRepo)
	financeService := services.NewFinanceService(
		transactionRepo,
		propertyRepo,
		ownership,
		services.InstallmentRounding(cfg.InstallmentRounding),
	)
	taskService := services.NewTaskService(taskRepo, ownership)
	constructionService := services.NewConstructionService(constructionRepo, propertyRepo, ownership)
	catalogService := services.NewCatalogService(catalogRepo, ownership)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	taskHandler := handlers.NewTaskHandler(taskService)
	constructionHandler := handlers.NewConstructionHandler(constructionService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Portfolio API is running",
		})
	})

	api := r.Group("/api")
	{
		// Public routes
		api.POST("/users", authHandler.Register)
		api.GET("/users", authHandler.ListUsers)
		api.POST("/login", authHandler.Login)
		api.POST("/auth/login", authHandler.Login)

		// Protected routes
		auth := api.Group("")
		auth.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			auth.GET("/users/me", authHandler.GetCurrentUser)
			auth.PUT("/users", authHandler.UpdateProfile)

			auth.GET("/properties", propertyHandler.ListProperties)
			auth.POST("/properties", propertyHandler.CreateProperty)
			auth.GET("/user-properties", propertyHandler.ListProperties)

			auth.GET("/tasks", taskHandler.ListTasks)
			auth.POST("/tasks", taskHandler.CreateTask)
			auth.PUT("/tasks/:id", taskHandler.UpdateTask)
			auth.PATCH("/tasks/:id/status", taskHandler.UpdateTaskStatus)
			auth.DELETE("/tasks/:id", taskHandler.DeleteTask)
			auth.GET("/tasks/property/:id", taskHandler.ListPropertyTasks)

			auth.POST("/transactions", financeHandler.CreateTransaction)
			auth.GET("/transactions", financeHandler.ListPortfolioTransactions)
			auth.GET("/financial-summary", financeHandler.GetFinancialSummary)

			auth.GET("/finances", financeHandler.ListUserFinances)
			auth.POST("/finances", financeHandler.CreateFinance)
			auth.POST("/finances/installments", financeHandler.CreateInstallments)
			auth.PUT("/finances/:id", financeHandler.UpdateFinance)
			auth.DELETE("/finances/:id", financeHandler.DeleteFinance)
			auth.GET("/finances/property/:property_id", financeHandler.ListPropertyFinances)

			auth.POST("/loans", catalogHandler.CreateLoan)
			auth.GET("/categories", catalogHandler.ListCategories)
			auth.POST("/categories", catalogHandler.CreateCategory)
			auth.GET("/expense-types", catalogHandler.ListExpenseTypes)
			auth.POST("/processes", catalogHandler.CreateProcess)

			auth.GET("/constructions", constructionHandler.ListConstructions)
			auth.POST("/constructions", constructionHandler.CreateConstruction)
			auth.PUT("/constructions/:id", constructionHandler.UpdateConstruction)
			auth.DELETE("/constructions/:id", constructionHandler.DeleteConstruction)
			auth.GET("/constructions/property/:property_id", constructionHandler.ListPropertyConstructions)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
