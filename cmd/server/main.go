package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"parkhub-backend/internal/adapters/http/middleware"
	"parkhub-backend/internal/adapters/http/routes"
	"parkhub-backend/internal/adapters/persistence/models"
	"parkhub-backend/internal/adapters/persistence/repositories"
	"parkhub-backend/internal/config"

	"github.com/gofiber/fiber/v2"

	_ "parkhub-backend/docs" // Swagger docs
)

// @title ParkHub API
// @version 1.0
// @description Parking lot management API: passes, gate entry/exit, fees and dashboard
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@parkhub.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Build the repository set. STORE_DRIVER=memory runs without MySQL,
	// useful for demos and local development.
	var repos *routes.Repos
	if cfg.UseMemoryStore() {
		log.Println("✅ Using in-memory store (no database)")
		repos = routes.NewMemoryRepos(repositories.NewMemoryStore())
	} else {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase()

		// Auto migrate (creates tables if not exist)
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to auto migrate: %v", err)
		}
		log.Println("✅ Database migration completed")

		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed data: %v", err)
		}

		repos = routes.NewGormRepos(db)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ParkHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass repos and cfg for dependency injection)
	expiryService := routes.Setup(app, repos, cfg)

	// Start pass expiry sweep (08:30 daily)
	expiryService.Start()
	defer expiryService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
