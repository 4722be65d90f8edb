package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Manager owns the scheduled maintenance jobs
type Manager struct {
	cron *cron.Cron
	db   *gorm.DB
}

// NewManager creates a new cron manager
func NewManager(db *gorm.DB) *Manager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &Manager{
		cron: c,
		db:   db,
	}
}

// Start registers and starts all cron jobs
func (m *Manager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (m *Manager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *Manager) registerJobs() error {
	// Daily at 03:00: purge soft-deleted todos past the retention window
	_, err := m.cron.AddFunc("0 0 3 * * *", func() {
		log.Println("[CRON] purge_deleted_todos started")
		m.PurgeDeletedTodos()
	})
	return err
}
