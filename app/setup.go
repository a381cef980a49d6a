package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/univault/univault-api/api"
	"github.com/univault/univault-api/config"
	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/router"
	"github.com/univault/univault-api/services"
	"github.com/univault/univault-api/services/cron"
	"github.com/univault/univault-api/utils/cache"
)

// SetupAndRunServer builds the stores, seeds the catalogue, wires the
// routes, and runs the server until it stops.
func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Build the record stores. The default is the volatile in-memory
	// store; STORE_DRIVER=postgres selects the persistent one behind the
	// same contract.
	var researchStore database.ResearchStore
	var institutionStore database.InstitutionStore

	switch getEnv.STORE_DRIVER {
	case "postgres":
		gormStore, err := database.StartGORM()
		if err != nil {
			print("Check whether the Postgres is running or not\n")
			return err
		}
		if err := gormStore.Init(); err != nil {
			print("Failed to initialize database tables\n")
			return err
		}
		defer gormStore.Close()
		researchStore = gormStore.Research()
		institutionStore = gormStore.Institutions()
	default:
		researchStore = database.NewMemoryResearchStore()
		institutionStore = database.NewMemoryInstitutionStore()
	}

	// Seed the initial catalogue
	if err := database.RunSeeds(context.Background(), researchStore, institutionStore); err != nil {
		return err
	}

	// Optional Redis cache for the read-heavy catalogue endpoints
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Catalogue caching disabled.", err)
			redisCache = nil
		}
	}

	// Institution aggregates refresher (enabled by default)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" {
		instService := services.NewInstitutionService(institutionStore, redisCache)
		cronManager = cron.NewCronManager(researchStore, institutionStore, instService)
		if err := cronManager.Start(); err != nil {
			log.Printf("Warning: Failed to start cron jobs: %v", err)
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes
	router.SetupRoutes(app, router.Deps{
		Research:     researchStore,
		Institutions: institutionStore,
		Cache:        redisCache,
	})

	return server.Run()
}
