package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"github.com/univault/univault-api/database"
	"github.com/univault/univault-api/services"
)

// CronManager manages all scheduled jobs.
type CronManager struct {
	cron         *cron.Cron
	research     database.ResearchStore
	institutions database.InstitutionStore
	instService  *services.InstitutionService
}

// NewCronManager creates a cron manager over the catalogue stores.
// instService may be nil when no cache invalidation is needed.
func NewCronManager(research database.ResearchStore, institutions database.InstitutionStore, instService *services.InstitutionService) *CronManager {
	return &CronManager{
		cron:         cron.New(cron.WithSeconds()),
		research:     research,
		institutions: institutions,
		instService:  instService,
	}
}

// Start registers and starts all jobs.
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}
	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

func (m *CronManager) registerJobs() error {
	// Every 10 minutes: recompute institution aggregates from the
	// research collection.
	_, err := m.cron.AddFunc("0 */10 * * * *", func() {
		log.Println("[CRON] Starting job: refresh_institution_aggregates")
		m.RefreshInstitutionAggregates()
	})
	return err
}
