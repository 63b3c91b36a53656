package routes

import (
	"time"

	"parkhub-backend/internal/adapters/http/handlers"
	"parkhub-backend/internal/adapters/http/middleware"
	"parkhub-backend/internal/adapters/persistence/repositories"
	"parkhub-backend/internal/config"
	"parkhub-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Repos bundles the repository set behind the services. Built either
// from a gorm.DB or from a MemoryStore, depending on STORE_DRIVER.
type Repos struct {
	Owners        repositories.OwnerRepository
	Vehicles      repositories.VehicleRepository
	Passes        repositories.PassRepository
	Transactions  repositories.TransactionRepository
	Notifications repositories.NotificationRepository
	Users         repositories.UserRepository
	RefreshTokens repositories.RefreshTokenRepository
}

// NewGormRepos builds the repository set on a MySQL connection
func NewGormRepos(db *gorm.DB) *Repos {
	return &Repos{
		Owners:        repositories.NewOwnerRepository(db),
		Vehicles:      repositories.NewVehicleRepository(db),
		Passes:        repositories.NewPassRepository(db),
		Transactions:  repositories.NewTransactionRepository(db),
		Notifications: repositories.NewNotificationRepository(db),
		Users:         repositories.NewUserRepository(db),
		RefreshTokens: repositories.NewRefreshTokenRepository(db),
	}
}

// NewMemoryRepos builds the repository set on an in-memory store
func NewMemoryRepos(store *repositories.MemoryStore) *Repos {
	return &Repos{
		Owners:        store.Owners(),
		Vehicles:      store.Vehicles(),
		Passes:        store.Passes(),
		Transactions:  store.Transactions(),
		Notifications: store.Notifications(),
		Users:         store.Users(),
		RefreshTokens: store.RefreshTokens(),
	}
}

// Setup configures all routes for the application and returns the
// expiry service so main can manage its lifecycle
func Setup(app *fiber.App, repos *Repos, cfg *config.Config) *services.ExpiryService {
	// Initialize services
	authService := services.NewAuthService(repos.Users, repos.RefreshTokens, cfg)
	parkingService := services.NewParkingService(repos.Owners, repos.Vehicles, repos.Passes, repos.Transactions)
	dashboardService := services.NewDashboardService(repos.Passes, repos.Transactions, cfg.Slots)
	expiryService := services.NewExpiryService(repos.Passes, repos.Notifications, repos.RefreshTokens)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	parkingHandler := handlers.NewParkingHandler(parkingService)
	passHandler := handlers.NewPassHandler(parkingService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	registryHandler := handlers.NewRegistryHandler(parkingService, expiryService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", middleware.CacheControl(10*time.Minute), swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	// Auth routes (public + protected)
	authRoutes := api.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Everything below requires a valid access token
	auth := middleware.AuthMiddleware(cfg)

	// Dashboard routes (live data, never cached)
	api.Get("/dashboard-stats/", auth, middleware.NoCacheHeaders(), dashboardHandler.GetStats)
	api.Get("/expiry-notifications/", auth, middleware.NoCacheHeaders(), dashboardHandler.GetExpiryNotifications)
	api.Get("/slots/", auth, middleware.NoCacheHeaders(), dashboardHandler.GetSlots)

	// Gate routes
	api.Post("/create-pass/", auth, passHandler.CreatePass)
	api.Post("/vehicle-entry/", auth, parkingHandler.VehicleEntry)
	api.Post("/vehicle-exit/", auth, parkingHandler.VehicleExit)

	// Listing routes
	api.Get("/transactions/", auth, parkingHandler.ListTransactions)
	api.Get("/passes/", auth, passHandler.ListPasses)
	api.Get("/owners/", auth, registryHandler.ListOwners)
	api.Get("/vehicles/", auth, registryHandler.ListVehicles)
	api.Get("/notifications/", auth, registryHandler.ListNotifications)

	return expiryService
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited harder than the rest of the API)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}
