package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/handlers"
	dashboard_handlers "github.com/univault/univault-api/handlers/dashboard"
	institution_handlers "github.com/univault/univault-api/handlers/institution"
	research_handlers "github.com/univault/univault-api/handlers/research"
	"github.com/univault/univault-api/services"
	"github.com/univault/univault-api/utils/auth"
	"github.com/univault/univault-api/utils/cache"
	"github.com/univault/univault-api/utils/middleware"
)

// Deps are the explicitly constructed collaborators the routes are built
// on. Stores are injected at startup; nothing reaches for ambient global
// state.
type Deps struct {
	Research     database.ResearchStore
	Institutions database.InstitutionStore
	Cache        *cache.RedisCache
}

// SetupRoutes wires middleware, services, and handlers onto the app.
func SetupRoutes(app *fiber.App, deps Deps) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "univault-auth"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Services on top of the injected stores
	researchService := services.NewResearchService(deps.Research)
	institutionService := services.NewInstitutionService(deps.Institutions, deps.Cache)
	dashboardService := services.NewDashboardService(deps.Research, deps.Institutions)

	researchHandler := research_handlers.NewResearchHandler(researchService)
	institutionHandler := institution_handlers.NewInstitutionHandler(institutionService)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(dashboardService)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", handlers.HandleCheckHealth)

	// API v1 group
	api := app.Group("/api/v1")

	// Research routes: public catalogue reads, owner-restricted mutations
	research := api.Group("/research")
	research.Get("/", researchHandler.ListResearch)
	research.Get("/mine", authMiddleware.Required(), researchHandler.MyResearch)
	research.Get("/:id", researchHandler.GetResearch)
	research.Post("/", authMiddleware.Required(), researchHandler.CreateResearch)
	research.Put("/:id", authMiddleware.Required(), researchHandler.UpdateResearch)
	research.Delete("/:id", authMiddleware.Required(), researchHandler.DeleteResearch)

	// Institution routes (public, read-only)
	institutions := api.Group("/institutions")
	institutions.Get("/", institutionHandler.ListInstitutions)
	institutions.Get("/:id", institutionHandler.GetInstitution)

	// Dashboard routes (protected)
	dashboard := api.Group("/dashboard", authMiddleware.Required())
	dashboard.Get("/", dashboardHandler.GetDashboard)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/activity", dashboardHandler.GetActivity)
}
