package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StaleShipmentReportJob logs shipments stuck in pending or onHold beyond
// the configured age. The job reads only; the ledger holds the full truth
// and nothing here mutates state.
type StaleShipmentReportJob struct {
	db     *gorm.DB
	maxAge time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStaleShipmentReportJob creates the report job. maxAge is how long a
// shipment may sit in pending or onHold before it is reported.
func NewStaleShipmentReportJob(db *gorm.DB, maxAge time.Duration, logger *slog.Logger) *StaleShipmentReportJob {
	return &StaleShipmentReportJob{
		db:     db,
		maxAge: maxAge,
		cron:   cron.New(),
		logger: logger.With("component", "stale_shipment_report_job"),
	}
}

// Start schedules the report to run daily at 06:00.
func (j *StaleShipmentReportJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale shipment report job started (running daily)")
	return nil
}

// Stop stops the report job.
func (j *StaleShipmentReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale shipment report job stopped")
}

// staleShipment is the report row.
type staleShipment struct {
	TrackingNumber string    `gorm:"column:tracking_number"`
	Status         string    `gorm:"column:status"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (j *StaleShipmentReportJob) run() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.maxAge)

	var stale []staleShipment
	err := j.db.WithContext(ctx).Raw(`
		SELECT tracking_number, status, updated_at
		FROM shipments
		WHERE status IN ('pending', 'onHold') AND updated_at < ?
		ORDER BY updated_at ASC
	`, cutoff).Scan(&stale).Error
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale shipment report failed", "error", err)
		return
	}

	if len(stale) == 0 {
		j.logger.InfoContext(ctx, "No stale shipments found")
		return
	}

	j.logger.WarnContext(ctx, "Stale shipments found", "count", len(stale))
	for _, s := range stale {
		j.logger.WarnContext(ctx, "Stale shipment",
			"trackingNumber", s.TrackingNumber,
			"status", s.Status,
			"idleSince", s.UpdatedAt,
		)
	}
}
