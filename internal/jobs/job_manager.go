package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleShipmentJob *StaleShipmentReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(db *gorm.DB, staleShipmentAge time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleShipmentJob: NewStaleShipmentReportJob(db, staleShipmentAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleShipmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale shipment report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleShipmentJob.Stop()
}
