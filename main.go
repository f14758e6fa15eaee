package main

import (
	"log"

	"quizbuilder/config"
	"quizbuilder/handlers"
	"quizbuilder/middleware"
	"quizbuilder/models"
	"quizbuilder/routes"
	"quizbuilder/seed"
	"quizbuilder/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Answer{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	quizService := services.NewQuizService(db, redisClient)

	// Seed reference data in development; Run is a no-op on a non-empty store
	if cfg.SeedOnStart {
		if err := seed.Run(db, quizService); err != nil {
			log.Printf("Seeding skipped or failed: %v", err)
		}
	}

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS(cfg.FrontendURL))

	// Setup routes
	routes.SetupRoutes(router, quizHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
